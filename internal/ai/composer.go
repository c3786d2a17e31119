package ai

import (
	"fmt"
	"strings"

	"leadline/internal/vertical"
)

// PromptContext carries everything the composer needs for one session. The
// feature config must already have customer overrides applied.
type PromptContext struct {
	BusinessName           string
	Channel                vertical.Channel
	Vertical               vertical.PromptConfig
	Features               vertical.FeatureConfig
	AdditionalInstructions string
}

// GenerateCompletePrompt assembles the system prompt for a session. The
// section order is fixed: header, channel behavior, brain rules, compliance
// modifiers, capabilities and restrictions, workflow permissions, then any
// business-specific instructions verbatim. Sections are separated by a blank
// line and omitted entirely when empty; configuration changes content only,
// never order.
func GenerateCompletePrompt(ctx PromptContext) string {
	sections := []string{
		headerSection(ctx),
		channelSection(ctx.Vertical, ctx.Channel),
		brainSection(ctx.Vertical.Brain),
		complianceSection(ctx.Vertical.ID),
		featureSection(ctx.Features),
		workflowSection(ctx.Vertical.Workflow),
		strings.TrimSpace(ctx.AdditionalInstructions),
	}

	nonEmpty := make([]string, 0, len(sections))
	for _, section := range sections {
		if section != "" {
			nonEmpty = append(nonEmpty, section)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func headerSection(ctx PromptContext) string {
	business := strings.TrimSpace(ctx.BusinessName)
	if business == "" {
		return fmt.Sprintf(
			"You are the virtual receptionist for a %s business. You represent the business on every conversation and never break character.",
			ctx.Vertical.Name)
	}
	return fmt.Sprintf(
		"You are the virtual receptionist for %s, a %s business. You represent %s on every conversation and never break character.",
		business, ctx.Vertical.Name, business)
}
