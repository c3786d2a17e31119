package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"leadline/internal/ai"
	"leadline/internal/policy"
	"leadline/internal/settings"
	"leadline/internal/tools"
	"leadline/internal/vertical"
)

// AgentConfigResponse is everything the agent runtime needs to start a
// session: the system prompt, the resolved policy, and the filtered tool
// schemas for the function-calling interface.
type AgentConfigResponse struct {
	SystemPrompt string               `json:"system_prompt"`
	Policy       *policy.ActionPolicy `json:"action_policy"`
	Tools        []openai.Tool        `json:"tools"`
}

// HandleAgentConfig resolves the full agent configuration for a customer
// and channel: settings fetch, vertical resolution, feature overlay, policy
// build, prompt synthesis, tool filtering.
func HandleAgentConfig(store settings.Source) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		customerID := r.URL.Query().Get("customer_id")
		if customerID == "" {
			http.Error(w, "customer_id is required", http.StatusBadRequest)
			return
		}

		rawChannel := r.URL.Query().Get("channel")
		channel, ok := vertical.ParseChannel(rawChannel)
		if rawChannel != "" && !ok {
			http.Error(w, "unknown channel", http.StatusBadRequest)
			return
		}

		s, err := store.GetCustomerSettings(r.Context(), customerID)
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, "failed to load customer settings", err)
			return
		}

		writeJSON(w, http.StatusOK, BuildAgentConfig(s, channel))
	})
}

// BuildAgentConfig runs the resolution pipeline for already-fetched
// settings. Prompt and policy are built fresh on every call; nothing is
// cached here, so settings changes take effect immediately.
func BuildAgentConfig(s *settings.CustomerSettings, channel vertical.Channel) AgentConfigResponse {
	verticalID := vertical.ResolveVerticalID(s.BusinessType)
	actionPolicy := policy.BuildActionPolicy(verticalID, channel, policy.BuildFeatureOverrides(s))

	prompt := ai.GenerateCompletePrompt(ai.PromptContext{
		BusinessName:           s.BusinessName,
		Channel:                channel,
		Vertical:               vertical.GetVerticalConfig(verticalID),
		Features:               actionPolicy.FeatureConfig,
		AdditionalInstructions: s.KnowledgeContent,
	})

	return AgentConfigResponse{
		SystemPrompt: prompt,
		Policy:       actionPolicy,
		Tools:        tools.SessionTools(actionPolicy),
	}
}

// HandleGetPromptByChannelParam previews the composed prompt for settings
// supplied in the request body. The channel comes from the URL path, e.g.
// POST /prompts/web_chat.
func HandleGetPromptByChannelParam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// extract channel from URL path
	path := strings.TrimPrefix(r.URL.Path, "/prompts/")
	if path == "" {
		http.Error(w, "Channel is required", http.StatusBadRequest)
		return
	}
	channel, ok := vertical.ParseChannel(path)
	if !ok {
		http.Error(w, "Unknown channel", http.StatusBadRequest)
		return
	}

	var s settings.CustomerSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cfg := BuildAgentConfig(&s, channel)
	writeJSON(w, http.StatusOK, map[string]any{
		"system_prompt": cfg.SystemPrompt,
		"vertical_id":   cfg.Policy.VerticalID,
		"vertical_name": cfg.Policy.VerticalName,
	})
}

type ToolRefusalRequest struct {
	ToolName string                    `json:"tool_name"`
	Channel  string                    `json:"channel"`
	Settings settings.CustomerSettings `json:"settings"`
}

type ToolRefusalResponse struct {
	Allowed bool   `json:"allowed"`
	Refusal string `json:"refusal,omitempty"`
}

// HandleToolRefusal tells the agent runtime whether a tool call is allowed
// mid-conversation and, when it isn't, which refusal text to speak.
func HandleToolRefusal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ToolRefusalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ToolName == "" {
		http.Error(w, "tool_name is required", http.StatusBadRequest)
		return
	}

	channel, _ := vertical.ParseChannel(req.Channel)
	actionPolicy := policy.BuildActionPolicyFromSettings(&req.Settings, channel)

	resp := ToolRefusalResponse{Allowed: policy.IsToolAllowed(req.ToolName, actionPolicy)}
	if !resp.Allowed {
		resp.Refusal = policy.ToolRefusal(req.ToolName, actionPolicy)
	}
	writeJSON(w, http.StatusOK, resp)
}
