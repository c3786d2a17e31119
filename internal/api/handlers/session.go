package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"leadline/internal/config"
	"leadline/internal/settings"
)

// AgentSessionConfig is the conversation-initiation payload sent to the
// voice-agent provider. The prompt override and tool list come from the
// policy engine, never from provider-side defaults.
type AgentSessionConfig struct {
	Type                       string `json:"type"`
	ConversationConfigOverride struct {
		Agent struct {
			Prompt struct {
				Prompt string           `json:"prompt"`
				Tools  []map[string]any `json:"tools,omitempty"`
			} `json:"prompt"`
			FirstMessage string `json:"first_message"`
		} `json:"agent"`
	} `json:"conversation_config_override"`
	ClientData struct {
		DynamicVariables map[string]string `json:"dynamic_variables,omitempty"`
	} `json:"client_data,omitempty"`
}

func startAgentSession(
	cfg *config.Config,
	agentConfig AgentConfigResponse,
	s *settings.CustomerSettings,
	callerPhone string,
	streamSid string,
) (*websocket.Conn, error) {
	signedURL, err := getAgentSignedURL(cfg.VoiceAgentID, cfg.VoiceAgentAPIKey)
	if err != nil {
		return nil, err
	}

	ws, _, err := websocket.DefaultDialer.Dial(signedURL, nil)
	if err != nil {
		return nil, err
	}

	sessionConfig := buildAgentSessionConfig(agentConfig, s, callerPhone)
	if err := ws.WriteJSON(sessionConfig); err != nil {
		ws.Close()
		return nil, err
	}

	go relayAgentMessages(ws, streamSid)

	return ws, nil
}

func buildAgentSessionConfig(agentConfig AgentConfigResponse, s *settings.CustomerSettings, callerPhone string) AgentSessionConfig {
	sessionConfig := AgentSessionConfig{
		Type: "conversation_initiation_client_data",
	}

	sessionConfig.ConversationConfigOverride.Agent.Prompt.Prompt = agentConfig.SystemPrompt
	sessionConfig.ConversationConfigOverride.Agent.Prompt.Tools = toolSchemaPayload(agentConfig)
	sessionConfig.ConversationConfigOverride.Agent.FirstMessage = fmt.Sprintf(
		"Thank you for calling %s, how can I help you today?", s.BusinessName)

	sessionConfig.ClientData.DynamicVariables = map[string]string{
		"customer_id":  s.CustomerID,
		"caller_phone": callerPhone,
	}

	return sessionConfig
}

// toolSchemaPayload re-encodes the typed tool schemas as the loose maps the
// provider protocol expects.
func toolSchemaPayload(agentConfig AgentConfigResponse) []map[string]any {
	raw, err := json.Marshal(agentConfig.Tools)
	if err != nil {
		zap.L().Error("failed to marshal tool schemas", zap.Error(err))
		return nil
	}
	var payload []map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		zap.L().Error("failed to re-encode tool schemas", zap.Error(err))
		return nil
	}
	return payload
}

func relayAgentMessages(ws *websocket.Conn, streamSid string) {
	for {
		_, message, err := ws.ReadMessage()
		if err != nil {
			zap.L().Warn("agent stream read error", zap.Error(err))
			return
		}

		var data map[string]any
		if err := json.Unmarshal(message, &data); err != nil {
			zap.L().Warn("agent message parse error", zap.Error(err))
			continue
		}

		messageType, ok := data["type"].(string)
		if !ok {
			continue
		}

		switch messageType {
		case "audio":
			if audioEvent, ok := data["audio_event"].(map[string]any); ok {
				if audioBase64, ok := audioEvent["audio_base_64"].(string); ok {
					audioData := map[string]any{
						"event":     "media",
						"streamSid": streamSid,
						"media": map[string]any{
							"payload": audioBase64,
						},
					}
					if err := ws.WriteJSON(audioData); err != nil {
						zap.L().Warn("failed to forward audio to twilio", zap.Error(err))
					}
				}
			}

		case "conversation_initiation_metadata":
			if metadata, ok := data["conversation_initiation_metadata_event"].(map[string]any); ok {
				if conversationID, ok := metadata["conversation_id"].(string); ok {
					if session, exists := callSessions.Load(streamSid); exists {
						session.(*CallSession).ConversationID = conversationID
						callSessions.Store(streamSid, session)
					}
				}
			}

		case "interruption":
			ws.WriteJSON(map[string]any{
				"event": "clear",
			})

		case "ping":
			if pingEvent, ok := data["ping_event"].(map[string]any); ok {
				if eventID, ok := pingEvent["event_id"].(string); ok {
					ws.WriteJSON(map[string]any{
						"type":     "pong",
						"event_id": eventID,
					})
				}
			}
		}
	}
}

func getAgentSignedURL(agentID string, apiKey string) (string, error) {
	url := fmt.Sprintf("https://api.elevenlabs.io/v1/convai/conversation/get_signed_url?agent_id=%s",
		agentID)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("xi-api-key", apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get signed URL: %s", resp.Status)
	}

	var result struct {
		SignedURL string `json:"signed_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.SignedURL, nil
}

// notifyCRM posts a lifecycle event to the CRM automation webhook. Failures
// are logged, never surfaced to the call path.
func notifyCRM(cfg *config.Config, event string, payload map[string]any) {
	if cfg.CRMWebhookURL == "" {
		return
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("failed to marshal CRM webhook payload", zap.Error(err))
		return
	}

	url := fmt.Sprintf("%s/%s", cfg.CRMWebhookURL, event)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		zap.L().Error("failed to create CRM webhook request", zap.Error(err))
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", cfg.CRMWebhookToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		zap.L().Error("failed to send CRM webhook", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		zap.L().Warn("CRM webhook rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
	}
}
