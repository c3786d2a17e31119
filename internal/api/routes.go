package api

import (
	"net/http"

	h "leadline/internal/api/handlers"
	"leadline/internal/config"
	"leadline/internal/middleware"
	"leadline/internal/settings"

	"github.com/gorilla/websocket"
)

func NewRouter(cfg *config.Config, store settings.Source, upgrader websocket.Upgrader) http.Handler {
	mux := http.NewServeMux()

	// Agent configuration & policy
	mux.Handle("/agent-config", h.HandleAgentConfig(store))
	mux.HandleFunc("/prompts/", h.HandleGetPromptByChannelParam) // Note the trailing slash
	mux.HandleFunc("/tool-refusal", h.HandleToolRefusal)

	// Twilio x voice agent
	mux.Handle("/incoming-call", h.HandleInboundCall(cfg))
	mux.Handle("/outbound-call", h.HandleOutboundCall(cfg))
	mux.Handle("/outbound-call-twiml", h.HandleOutboundCallTwiml(cfg))
	mux.Handle("/media-stream", h.HandleInboundMediaStream(cfg, store, upgrader))
	mux.Handle("/outbound-media-stream", h.HandleOutboundMediaStream(cfg, store, upgrader))

	// Twilio SMS
	mux.Handle("/send-sms", h.HandleSendSMS(cfg, store))

	// Stripe
	mux.Handle("/payment-link", h.HandleCreatePaymentLink(cfg))

	var handler http.Handler = mux
	handler = middleware.Logging(handler)

	return handler
}
