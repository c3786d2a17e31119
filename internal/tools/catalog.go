package tools

import (
	openai "github.com/sashabaranov/go-openai"

	"leadline/internal/policy"
)

// Catalog returns the full set of callable tools exposed to the language
// model's function-calling interface. Names match the policy tool table;
// renaming one is a breaking change.
func Catalog() []openai.Tool {
	return []openai.Tool{
		function("create_booking",
			"Book an appointment for the customer.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"customer_name": map[string]any{"type": "string"},
					"phone":         map[string]any{"type": "string"},
					"service":       map[string]any{"type": "string", "description": "Requested service in the customer's words"},
					"preferred_time": map[string]any{
						"type":        "string",
						"description": "Preferred date and time, ISO 8601 or natural language",
					},
				},
				"required": []string{"customer_name", "phone", "service"},
			}),
		function("reschedule_booking",
			"Move an existing appointment to a new time.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"booking_id":     map[string]any{"type": "string"},
					"preferred_time": map[string]any{"type": "string"},
				},
				"required": []string{"booking_id", "preferred_time"},
			}),
		function("cancel_booking",
			"Cancel an existing appointment. Always confirm with the customer first.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"booking_id": map[string]any{"type": "string"},
					"reason":     map[string]any{"type": "string"},
				},
				"required": []string{"booking_id"},
			}),
		function("check_availability",
			"Check open appointment slots for a service.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"service":    map[string]any{"type": "string"},
					"date_range": map[string]any{"type": "string"},
				},
				"required": []string{"service"},
			}),
		function("escalate_emergency",
			"Alert the on-call contact about an emergency. Use only for genuine emergencies.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"summary":  map[string]any{"type": "string"},
					"address":  map[string]any{"type": "string"},
					"callback": map[string]any{"type": "string"},
				},
				"required": []string{"summary", "callback"},
			}),
		function("capture_lead",
			"Record a new lead with contact details and the stated need.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":  map[string]any{"type": "string"},
					"phone": map[string]any{"type": "string"},
					"email": map[string]any{"type": "string"},
					"need":  map[string]any{"type": "string"},
				},
				"required": []string{"name", "phone"},
			}),
		function("schedule_callback",
			"Schedule a callback from the team at a time the customer chooses.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"phone":          map[string]any{"type": "string"},
					"preferred_time": map[string]any{"type": "string"},
					"topic":          map[string]any{"type": "string"},
				},
				"required": []string{"phone", "preferred_time"},
			}),
		function("collect_insurance_info",
			"Record the customer's insurance carrier and member details.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"carrier":   map[string]any{"type": "string"},
					"member_id": map[string]any{"type": "string"},
				},
				"required": []string{"carrier"},
			}),
		function("quote_price",
			"Quote a price from the published price list.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"service": map[string]any{"type": "string"},
				},
				"required": []string{"service"},
			}),
		function("verify_service_area",
			"Check whether an address is inside the business's service area.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"address": map[string]any{"type": "string"},
				},
				"required": []string{"address"},
			}),
		function("send_sms_followup",
			"Send the customer an SMS follow-up with a confirmation or link.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"phone":   map[string]any{"type": "string"},
					"message": map[string]any{"type": "string"},
				},
				"required": []string{"phone", "message"},
			}),
		function("transfer_to_human",
			"Transfer the live conversation to a human team member.",
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"reason": map[string]any{"type": "string"},
				},
			}),
	}
}

// SessionTools returns the catalog filtered down to what the session's
// policy allows.
func SessionTools(p *policy.ActionPolicy) []openai.Tool {
	return policy.FilterToolSchemas(Catalog(), p)
}

func function(name, description string, parameters map[string]any) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}
