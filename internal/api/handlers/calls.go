package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"leadline/internal/config"
	"leadline/internal/settings"
	"leadline/internal/vertical"
)

// CallSession tracks one live media stream between the phone network and
// the voice-agent provider.
type CallSession struct {
	StreamSid      string
	ConversationID string
	CustomerID     string
	CallerPhone    string
	Direction      string
}

var callSessions sync.Map

// HandleInboundCall answers Twilio's incoming-call webhook with TwiML that
// connects the call to the media-stream endpoint. The customer id is baked
// into each business's webhook URL when their number is provisioned.
func HandleInboundCall(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		customerID := r.URL.Query().Get("customer_id")
		callerPhone := r.FormValue("From")
		zap.L().Info("incoming call",
			zap.String("customer_id", customerID),
			zap.String("caller_phone", callerPhone))

		if customerID == "" {
			twiml := `<?xml version="1.0" encoding="UTF-8"?>
        <Response>
            <Say>Sorry, this number is not configured yet. Please try again later.</Say>
            <Hangup />
        </Response>`
			w.Header().Set("Content-Type", "text/xml")
			w.Write([]byte(twiml))
			return
		}

		twiml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
        <Response>
            <Connect>
                <Stream url="wss://%s/media-stream">
                    <Parameter name="customer_id" value="%s" />
                    <Parameter name="caller_phone" value="%s" />
                </Stream>
            </Connect>
        </Response>`, r.Host, customerID, url.QueryEscape(callerPhone))

		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(twiml))
	})
}

// HandleInboundMediaStream upgrades Twilio's media websocket and relays it
// to the voice-agent provider with the customer's composed prompt.
func HandleInboundMediaStream(cfg *config.Config, store settings.Source, upgrader websocket.Upgrader) http.Handler {
	return mediaStreamHandler(cfg, store, upgrader, "inbound")
}

// HandleOutboundMediaStream is the outbound-call twin of the inbound relay.
func HandleOutboundMediaStream(cfg *config.Config, store settings.Source, upgrader websocket.Upgrader) http.Handler {
	return mediaStreamHandler(cfg, store, upgrader, "outbound")
}

func mediaStreamHandler(cfg *config.Config, store settings.Source, upgrader websocket.Upgrader, direction string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			zap.L().Error("failed to upgrade media stream", zap.Error(err))
			return
		}
		defer conn.Close()

		var streamSid string
		var agentWs *websocket.Conn
		isDisconnecting := false

		for {
			messageType, message, err := conn.ReadMessage()
			if err != nil {
				zap.L().Warn("media stream read error", zap.Error(err))
				break
			}
			if messageType != websocket.TextMessage {
				continue
			}

			var data map[string]any
			if err := json.Unmarshal(message, &data); err != nil {
				zap.L().Warn("media stream parse error", zap.Error(err))
				continue
			}

			event, ok := data["event"].(string)
			if !ok {
				continue
			}
			if isDisconnecting && event != "stop" {
				continue
			}

			switch event {
			case "start":
				startData, ok := data["start"].(map[string]any)
				if !ok {
					continue
				}
				streamSid, _ = startData["streamSid"].(string)
				params, _ := startData["customParameters"].(map[string]any)
				customerID, _ := params["customer_id"].(string)
				callerPhone, _ := params["caller_phone"].(string)
				if decoded, err := url.QueryUnescape(callerPhone); err == nil {
					callerPhone = decoded
				}

				s, err := store.GetCustomerSettings(r.Context(), customerID)
				if err != nil {
					zap.L().Error("failed to load settings for call",
						zap.String("customer_id", customerID), zap.Error(err))
					return
				}

				agentConfig := BuildAgentConfig(s, vertical.ChannelPhone)
				agentWs, err = startAgentSession(cfg, agentConfig, s, callerPhone, streamSid)
				if err != nil {
					zap.L().Error("failed to start agent session", zap.Error(err))
					return
				}

				callSessions.Store(streamSid, &CallSession{
					StreamSid:   streamSid,
					CustomerID:  customerID,
					CallerPhone: callerPhone,
					Direction:   direction,
				})

			case "media":
				if agentWs != nil && !isDisconnecting {
					mediaData, ok := data["media"].(map[string]any)
					if !ok {
						continue
					}
					payload, _ := mediaData["payload"].(string)
					msg := map[string]any{
						"user_audio_chunk": payload,
					}
					if err := agentWs.WriteJSON(msg); err != nil {
						zap.L().Warn("failed to forward audio to agent", zap.Error(err))
					}
				}

			case "stop":
				isDisconnecting = true
				if agentWs != nil {
					agentWs.WriteJSON(map[string]string{"type": "end_conversation"})
					agentWs.Close()
				}

				if session, ok := callSessions.Load(streamSid); ok {
					call := session.(*CallSession)
					notifyCRM(cfg, "call-completed", map[string]any{
						"conversation_id": call.ConversationID,
						"customer_id":     call.CustomerID,
						"caller_phone":    call.CallerPhone,
						"call_sid":        call.StreamSid,
						"direction":       call.Direction,
					})
					callSessions.Delete(streamSid)
				}

				conn.WriteJSON(map[string]any{
					"event":     "mark_done",
					"streamSid": streamSid,
				})
				conn.WriteJSON(map[string]any{
					"event":     "clear",
					"streamSid": streamSid,
				})
				conn.WriteJSON(map[string]any{
					"event":     "twiml",
					"streamSid": streamSid,
					"twiml":     "<Response><Hangup/></Response>",
				})
				return
			}
		}
	})
}
