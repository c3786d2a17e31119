package policy

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

func normalizeToolName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// matchesDisabled is the loose matcher the whole filter hangs on: a disabled
// entry matches when either string contains the other. That catches aliases
// and synonyms of a tool name ("create_booking_v2", "booking") at the cost
// of occasional false positives on short tokens. Callers rely on these exact
// semantics; do not tighten to equality.
func matchesDisabled(normalizedName, disabled string) bool {
	return strings.Contains(normalizedName, disabled) || strings.Contains(disabled, normalizedName)
}

// IsToolAllowed reports whether a tool name survives the policy's disabled
// list. First hit short-circuits.
func IsToolAllowed(name string, p *ActionPolicy) bool {
	normalized := normalizeToolName(name)
	if normalized == "" {
		return false
	}
	for _, disabled := range p.DisabledTools {
		if matchesDisabled(normalized, disabled) {
			return false
		}
	}
	return true
}

// FilterToolSchemas drops disallowed tools from a function-calling schema
// list.
func FilterToolSchemas(tools []openai.Tool, p *ActionPolicy) []openai.Tool {
	filtered := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		name := ""
		if tool.Function != nil {
			name = tool.Function.Name
		}
		if name == "" || IsToolAllowed(name, p) {
			filtered = append(filtered, tool)
		}
	}
	return filtered
}

// FilterRawToolSchemas filters loosely-shaped tool descriptors as they
// arrive over the wire. The name historically lived either at the top level
// or under "function"; both locations are honored.
func FilterRawToolSchemas(tools []map[string]any, p *ActionPolicy) []map[string]any {
	filtered := make([]map[string]any, 0, len(tools))
	for _, tool := range tools {
		name := rawToolName(tool)
		if name == "" || IsToolAllowed(name, p) {
			filtered = append(filtered, tool)
		}
	}
	return filtered
}

func rawToolName(tool map[string]any) string {
	if name, ok := tool["name"].(string); ok && name != "" {
		return name
	}
	if fn, ok := tool["function"].(map[string]any); ok {
		if name, ok := fn["name"].(string); ok {
			return name
		}
	}
	return ""
}

// ToolRefusal picks the refusal text for a disallowed tool request. The
// substring checks run on the raw lowercased name in fixed priority order:
// booking, transfer, pricing, then the primary fallback.
func ToolRefusal(name string, p *ActionPolicy) string {
	lowered := strings.ToLower(name)
	switch {
	case strings.Contains(lowered, "booking") ||
		strings.Contains(lowered, "appointment") ||
		strings.Contains(lowered, "schedule"):
		return p.RefusalTemplates[RefusalBookingUnavailable]
	case strings.Contains(lowered, "transfer") ||
		strings.Contains(lowered, "escalate"):
		return p.RefusalTemplates[RefusalTransferUnavailable]
	case strings.Contains(lowered, "quote") ||
		strings.Contains(lowered, "pricing"):
		return p.RefusalTemplates[RefusalPricingUnavailable]
	default:
		return p.RefusalTemplates[RefusalPrimary]
	}
}
