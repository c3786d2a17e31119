package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"leadline/internal/config"
)

// HandleOutboundCall originates a follow-up call from the business to a
// customer. The media stream that answers resolves the prompt and policy
// the same way inbound calls do.
func HandleOutboundCall(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Number     string `json:"number"`
			CustomerID string `json:"customer_id"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Number == "" {
			http.Error(w, "Phone number is required", http.StatusBadRequest)
			return
		}
		if req.CustomerID == "" {
			http.Error(w, "customer_id is required", http.StatusBadRequest)
			return
		}

		call, err := createTwilioCall(cfg, req.Number, req.CustomerID, r.Host)
		if err != nil {
			zap.L().Error("failed to create twilio call", zap.Error(err))
			http.Error(w, "Failed to initiate call", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Call initiated",
			"callSid": call.Sid,
		})
	})
}

// HandleOutboundCallTwiml answers Twilio's fetch for outbound call
// instructions and connects the call to the outbound media stream.
func HandleOutboundCallTwiml(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := r.URL.Query().Get("customer_id")
		number := r.URL.Query().Get("number")

		twiml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
        <Response>
            <Connect>
                <Stream url="wss://%s/outbound-media-stream">
                    <Parameter name="customer_id" value="%s" />
                    <Parameter name="caller_phone" value="%s" />
                </Stream>
            </Connect>
        </Response>`, r.Host, customerID, url.QueryEscape(number))

		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(twiml))
	})
}

func createTwilioCall(cfg *config.Config, number, customerID, host string) (*twilioApi.ApiV2010Call, error) {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	twimlURL := fmt.Sprintf("https://%s/outbound-call-twiml?customer_id=%s&number=%s",
		host, url.QueryEscape(customerID), url.QueryEscape(number))

	params := &twilioApi.CreateCallParams{}
	params.SetTo(number)
	params.SetFrom(cfg.TwilioPhoneNumber)
	params.SetUrl(twimlURL)

	return client.Api.CreateCall(params)
}
