package handlers

import (
	"encoding/json"
	"net/http"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"leadline/internal/config"
	"leadline/internal/policy"
	"leadline/internal/settings"
	"leadline/internal/vertical"
)

type SMSRequest struct {
	CustomerID string `json:"customer_id"`
	To         string `json:"to"`
	Message    string `json:"message"`
}

type SMSResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SID     string `json:"sid,omitempty"`
}

// HandleSendSMS sends an SMS follow-up on behalf of a business. The send is
// gated by the customer's resolved policy: if sms_follow_up is off, the
// request is refused with the policy's refusal text.
func HandleSendSMS(cfg *config.Config, store settings.Source) http.HandlerFunc {
	// initialize twilio client once per handler
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req SMSRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.CustomerID == "" || req.To == "" || req.Message == "" {
			http.Error(w, "Missing required fields", http.StatusBadRequest)
			return
		}

		s, err := store.GetCustomerSettings(r.Context(), req.CustomerID)
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, "failed to load customer settings", err)
			return
		}

		actionPolicy := policy.BuildActionPolicyFromSettings(s, vertical.ChannelSMS)
		if !policy.IsToolAllowed("send_sms_followup", actionPolicy) {
			writeJSON(w, http.StatusForbidden, SMSResponse{
				Success: false,
				Message: policy.ToolRefusal("send_sms_followup", actionPolicy),
			})
			return
		}

		params := &openapi.CreateMessageParams{}
		params.SetTo(req.To)
		params.SetFrom(cfg.TwilioPhoneNumber)
		params.SetBody(req.Message)

		resp, err := client.Api.CreateMessage(params)
		if err != nil {
			http.Error(w, "Failed to send SMS", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, SMSResponse{
			Success: true,
			Message: "SMS sent successfully",
			SID:     *resp.Sid,
		})
	}
}
