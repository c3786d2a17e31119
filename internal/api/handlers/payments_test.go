package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/config"
)

type MockBackend struct{}

func (mb *MockBackend) Call(method, path, key string, params stripe.ParamsContainer, v stripe.LastResponseSetter) error {
	switch path {
	case "/v1/products":
		*(v.(*stripe.Product)) = stripe.Product{ID: "prod_1234567890"}
	case "/v1/prices":
		*(v.(*stripe.Price)) = stripe.Price{ID: "price_1234567890"}
	case "/v1/payment_links":
		*(v.(*stripe.PaymentLink)) = stripe.PaymentLink{
			ID:  "plink_1234567890",
			URL: "https://stripe.com/pay/cs_test_1234567890",
		}
	}
	return nil
}

func (mb *MockBackend) CallRaw(method, path, key string, body *form.Values, params *stripe.Params, v stripe.LastResponseSetter) error {
	return nil
}

func (mb *MockBackend) CallMultipart(method, path, key, boundary string, body *bytes.Buffer, params *stripe.Params, v stripe.LastResponseSetter) error {
	return nil
}

func (mb *MockBackend) SetMaxNetworkRetries(maxNetworkRetries int64) {}

func (mb *MockBackend) CallStreaming(method, path, key string, params stripe.ParamsContainer, v stripe.StreamingLastResponseSetter) error {
	return nil
}

func TestHandleCreatePaymentLink(t *testing.T) {
	cfg := &config.Config{
		StripeAPIKeyTest: "sk_test_1234567890",
	}

	stripe.SetBackend(stripe.APIBackend, &MockBackend{})
	defer stripe.SetBackend(stripe.APIBackend, nil)

	t.Run("Should create a payment link for an invoice", func(t *testing.T) {
		reqBody := PaymentLinkRequest{
			Amount:      100.50,
			CustomerID:  "cust_plumbing",
			InvoiceID:   "inv_456",
			Description: "Drain repair",
			Currency:    "usd",
			Environment: "test",
		}
		body, _ := json.Marshal(reqBody)
		req := httptest.NewRequest(http.MethodPost, "/payment-link", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		HandleCreatePaymentLink(cfg).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp PaymentLinkResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "https://stripe.com/pay/cs_test_1234567890", resp.PaymentURL)
		assert.Equal(t, "plink_1234567890", resp.PaymentLinkID)
		assert.Equal(t, "inv_456", resp.InvoiceID)
	})

	t.Run("Should reject a malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/payment-link", bytes.NewBufferString("not json"))
		rr := httptest.NewRecorder()

		HandleCreatePaymentLink(cfg).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
