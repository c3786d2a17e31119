package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/vertical"
)

func plumbingContext() PromptContext {
	cfg := vertical.GetVerticalConfig(1)
	return PromptContext{
		BusinessName: "Ace Plumbing",
		Channel:      vertical.ChannelPhone,
		Vertical:     cfg,
		Features:     cfg.Features,
	}
}

func TestGenerateCompletePrompt(t *testing.T) {
	t.Run("Should open with the business header", func(t *testing.T) {
		prompt := GenerateCompletePrompt(plumbingContext())
		assert.True(t, strings.HasPrefix(prompt, "You are the virtual receptionist for Ace Plumbing, a Plumbing business."))
	})

	t.Run("Should fall back to a nameless header", func(t *testing.T) {
		ctx := plumbingContext()
		ctx.BusinessName = "  "
		prompt := GenerateCompletePrompt(ctx)
		assert.True(t, strings.HasPrefix(prompt, "You are the virtual receptionist for a Plumbing business."))
	})

	t.Run("Should emit sections in fixed order", func(t *testing.T) {
		ctx := plumbingContext()
		ctx.AdditionalInstructions = "We are closed on Sundays."
		prompt := GenerateCompletePrompt(ctx)

		order := []string{
			"You are the virtual receptionist",
			"CHANNEL GUIDELINES",
			"CONVERSATION RULES",
			"CAPABILITIES",
			"WORKFLOW PERMISSIONS",
			"We are closed on Sundays.",
		}
		last := -1
		for _, marker := range order {
			idx := strings.Index(prompt, marker)
			require.GreaterOrEqual(t, idx, 0, "missing section %q", marker)
			assert.Greater(t, idx, last, "section %q out of order", marker)
			last = idx
		}
	})

	t.Run("Should separate sections with exactly one blank line", func(t *testing.T) {
		prompt := GenerateCompletePrompt(plumbingContext())
		assert.NotContains(t, prompt, "\n\n\n")
	})

	t.Run("Should omit the compliance section for non-compliance verticals", func(t *testing.T) {
		prompt := GenerateCompletePrompt(plumbingContext())
		assert.NotContains(t, prompt, "COMPLIANCE REQUIREMENTS")
	})

	t.Run("Should include compliance guardrails for medical verticals", func(t *testing.T) {
		cfg := vertical.GetVerticalConfig(9)
		prompt := GenerateCompletePrompt(PromptContext{
			BusinessName: "Smile Dental",
			Channel:      vertical.ChannelPhone,
			Vertical:     cfg,
			Features:     cfg.Features,
		})
		assert.Contains(t, prompt, "COMPLIANCE REQUIREMENTS")
		assert.Contains(t, prompt, "never diagnose")
	})

	t.Run("Should include legal guardrails for the law vertical", func(t *testing.T) {
		cfg := vertical.GetVerticalConfig(13)
		prompt := GenerateCompletePrompt(PromptContext{
			BusinessName: "Smith & Partners",
			Channel:      vertical.ChannelWebChat,
			Vertical:     cfg,
			Features:     cfg.Features,
		})
		assert.Contains(t, prompt, "attorney-client relationship")
	})

	t.Run("Should reflect overridden features in capabilities and restrictions", func(t *testing.T) {
		ctx := plumbingContext()
		ctx.Features = ctx.Features.WithOverrides(vertical.FeatureOverrides{
			vertical.FeatureAppointmentBooking: vertical.FlagOff,
		})
		prompt := GenerateCompletePrompt(ctx)
		assert.NotContains(t, prompt, "You can book, reschedule, and cancel appointments.")
		assert.Contains(t, prompt, "Do not offer to book appointments")
	})

	t.Run("Should not emit a restriction line for flags without one", func(t *testing.T) {
		ctx := plumbingContext()
		ctx.Features = ctx.Features.WithOverrides(vertical.FeatureOverrides{
			vertical.FeatureLeadCapture:          vertical.FlagOff,
			vertical.FeatureCallbackScheduling:   vertical.FlagOff,
			vertical.FeatureLocationVerification: vertical.FlagOff,
		})
		prompt := GenerateCompletePrompt(ctx)
		assert.NotContains(t, prompt, "You can capture new leads")
		assert.NotContains(t, prompt, "You can schedule callbacks")
		assert.NotContains(t, prompt, "You can verify whether an address")
	})

	t.Run("Should append additional instructions verbatim", func(t *testing.T) {
		ctx := plumbingContext()
		ctx.AdditionalInstructions = "Mention the $25 coupon.\nNever discuss competitors."
		prompt := GenerateCompletePrompt(ctx)
		assert.True(t, strings.HasSuffix(prompt, "Mention the $25 coupon.\nNever discuss competitors."))
	})

	t.Run("Should be deterministic", func(t *testing.T) {
		ctx := plumbingContext()
		ctx.AdditionalInstructions = "Extra notes."
		assert.Equal(t, GenerateCompletePrompt(ctx), GenerateCompletePrompt(ctx))
	})
}

func TestChannelSection(t *testing.T) {
	t.Run("Should describe visuals and links on web chat", func(t *testing.T) {
		cfg := vertical.GetVerticalConfig(0)
		section := channelSection(cfg, vertical.ChannelWebChat)
		assert.Contains(t, section, "show images")
		assert.Contains(t, section, "clickable links")
	})

	t.Run("Should omit visuals and links on phone", func(t *testing.T) {
		cfg := vertical.GetVerticalConfig(0)
		section := channelSection(cfg, vertical.ChannelPhone)
		assert.NotContains(t, section, "show images")
		assert.NotContains(t, section, "clickable links")
	})

	t.Run("Should return nothing for an unconfigured channel", func(t *testing.T) {
		cfg := vertical.PromptConfig{Channels: map[vertical.Channel]vertical.ChannelBehavior{}}
		assert.Empty(t, channelSection(cfg, vertical.ChannelPhone))
	})
}

func TestGreetingAndLengthFallbacks(t *testing.T) {
	t.Run("Should default unknown greeting styles to professional", func(t *testing.T) {
		assert.Equal(t, greetingToneLines[vertical.GreetingProfessional], greetingToneLine("sarcastic"))
	})

	t.Run("Should default unknown response lengths to moderate", func(t *testing.T) {
		assert.Equal(t, responseLengthLines[vertical.ResponseModerate], responseLengthLine("epic"))
	})
}

func TestHumanizeAction(t *testing.T) {
	assert.Equal(t, "Process Payment", humanizeAction("process_payment"))
	assert.Equal(t, "Take Message", humanizeAction("take_message"))
}
