package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentlink"
	"github.com/stripe/stripe-go/v72/price"
	"github.com/stripe/stripe-go/v72/product"

	"leadline/internal/config"
)

type PaymentLinkRequest struct {
	Amount      float64 `json:"amount"`
	CustomerID  string  `json:"customer_id"`
	InvoiceID   string  `json:"invoice_id"`
	Description string  `json:"description"`
	Currency    string  `json:"currency"`
	Environment string  `json:"environment"`
}

type PaymentLinkResponse struct {
	PaymentURL    string `json:"payment_url"`
	PaymentLinkID string `json:"payment_link_id"`
	InvoiceID     string `json:"invoice_id"`
}

// HandleCreatePaymentLink creates a Stripe payment link for a service
// invoice, so the agent can text or read out a pay-by-link during a
// conversation.
func HandleCreatePaymentLink(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params PaymentLinkRequest

		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "invalid request parameters", err)
			return
		}

		// set stripe api key based on environment
		if params.Environment == "production" {
			stripe.Key = cfg.StripeAPIKeyLive
		} else {
			stripe.Key = cfg.StripeAPIKeyTest
		}

		description := params.Description
		if description == "" {
			description = "Service invoice"
		}

		productParams := &stripe.ProductParams{
			Name: stripe.String(description),
		}

		prod, err := product.New(productParams)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, "failed to create stripe product", err)
			return
		}

		amount := int64(math.Round(params.Amount * 100))
		priceParams := &stripe.PriceParams{
			Currency:   stripe.String(params.Currency),
			Product:    stripe.String(prod.ID),
			UnitAmount: stripe.Int64(amount),
		}
		p, err := price.New(priceParams)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, "failed to create stripe price", err)
			return
		}

		linkParams := &stripe.PaymentLinkParams{
			LineItems: []*stripe.PaymentLinkLineItemParams{
				{
					Price:    stripe.String(p.ID),
					Quantity: stripe.Int64(1),
				},
			},
			PaymentMethodTypes: stripe.StringSlice([]string{
				"card",
			}),
		}

		linkParams.AddMetadata("customer_id", params.CustomerID)
		linkParams.AddMetadata("invoice_id", params.InvoiceID)

		link, err := paymentlink.New(linkParams)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, "failed to create payment link", err)
			return
		}

		writeJSON(w, http.StatusOK, PaymentLinkResponse{
			InvoiceID:     params.InvoiceID,
			PaymentURL:    link.URL,
			PaymentLinkID: link.ID,
		})
	})
}

// helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string, err error) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{
		Error: fmt.Sprintf("%s: %v", message, err),
	})
}

func handleStripeError(w http.ResponseWriter, err error) {
	if stripeErr, ok := err.(*stripe.Error); ok {
		switch stripeErr.Type {
		case stripe.ErrorTypeCard:
			http.Error(w, stripeErr.Error(), http.StatusBadRequest)
		case stripe.ErrorTypeInvalidRequest:
			http.Error(w, stripeErr.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
