package policy

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/vertical"
)

func policyWithDisabled(disabled ...string) *ActionPolicy {
	p := BuildActionPolicy(vertical.GenericVerticalID, vertical.ChannelPhone, nil)
	p.DisabledTools = disabled
	return p
}

func TestIsToolAllowed(t *testing.T) {
	t.Run("Should block exact matches", func(t *testing.T) {
		p := policyWithDisabled("create_booking")
		assert.False(t, IsToolAllowed("create_booking", p))
		assert.True(t, IsToolAllowed("capture_lead", p))
	})

	t.Run("Should block when the name contains a disabled entry", func(t *testing.T) {
		p := policyWithDisabled("booking")
		assert.False(t, IsToolAllowed("create_booking_v2", p))
	})

	t.Run("Should block when a disabled entry contains the name", func(t *testing.T) {
		p := policyWithDisabled("create_booking")
		assert.False(t, IsToolAllowed("booking", p))
	})

	t.Run("Should normalize case and spaces before matching", func(t *testing.T) {
		p := policyWithDisabled("create_booking")
		assert.False(t, IsToolAllowed("  Create Booking  ", p))
	})

	t.Run("Should reject empty names", func(t *testing.T) {
		p := policyWithDisabled()
		assert.False(t, IsToolAllowed("", p))
		assert.False(t, IsToolAllowed("   ", p))
	})
}

func TestFilterToolSchemas(t *testing.T) {
	makeTool := func(name string) openai.Tool {
		return openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{Name: name},
		}
	}

	t.Run("Should drop disallowed tools and keep the rest", func(t *testing.T) {
		p := policyWithDisabled("create_booking")
		filtered := FilterToolSchemas([]openai.Tool{
			makeTool("create_booking"),
			makeTool("capture_lead"),
		}, p)

		require.Len(t, filtered, 1)
		assert.Equal(t, "capture_lead", filtered[0].Function.Name)
	})

	t.Run("Should keep nameless schemas", func(t *testing.T) {
		p := policyWithDisabled("create_booking")
		filtered := FilterToolSchemas([]openai.Tool{{Type: openai.ToolTypeFunction}}, p)
		assert.Len(t, filtered, 1)
	})
}

func TestFilterRawToolSchemas(t *testing.T) {
	p := policyWithDisabled("create_booking")

	t.Run("Should read the name from the top level", func(t *testing.T) {
		filtered := FilterRawToolSchemas([]map[string]any{
			{"name": "create_booking"},
			{"name": "capture_lead"},
		}, p)
		require.Len(t, filtered, 1)
		assert.Equal(t, "capture_lead", filtered[0]["name"])
	})

	t.Run("Should read the name from under function", func(t *testing.T) {
		filtered := FilterRawToolSchemas([]map[string]any{
			{"function": map[string]any{"name": "create_booking"}},
			{"function": map[string]any{"name": "quote_price"}},
		}, p)
		require.Len(t, filtered, 1)
	})

	t.Run("Should keep schemas with no recognizable name", func(t *testing.T) {
		filtered := FilterRawToolSchemas([]map[string]any{
			{"description": "mystery tool"},
		}, p)
		assert.Len(t, filtered, 1)
	})
}

func TestToolRefusal(t *testing.T) {
	p := BuildActionPolicy(vertical.GenericVerticalID, vertical.ChannelPhone, nil)

	t.Run("Should pick the booking refusal first", func(t *testing.T) {
		assert.Equal(t, p.RefusalTemplates[RefusalBookingUnavailable], ToolRefusal("create_booking", p))
		assert.Equal(t, p.RefusalTemplates[RefusalBookingUnavailable], ToolRefusal("book_appointment", p))
		// "schedule" outranks "transfer" because booking is checked first
		assert.Equal(t, p.RefusalTemplates[RefusalBookingUnavailable], ToolRefusal("schedule_transfer", p))
	})

	t.Run("Should pick the transfer refusal second", func(t *testing.T) {
		assert.Equal(t, p.RefusalTemplates[RefusalTransferUnavailable], ToolRefusal("transfer_to_human", p))
		assert.Equal(t, p.RefusalTemplates[RefusalTransferUnavailable], ToolRefusal("escalate_emergency", p))
	})

	t.Run("Should pick the pricing refusal third", func(t *testing.T) {
		assert.Equal(t, p.RefusalTemplates[RefusalPricingUnavailable], ToolRefusal("quote_price", p))
	})

	t.Run("Should fall back to the primary refusal", func(t *testing.T) {
		assert.Equal(t, p.RefusalTemplates[RefusalPrimary], ToolRefusal("collect_insurance_info", p))
		assert.Equal(t, p.RefusalTemplates[RefusalPrimary], ToolRefusal("", p))
	})
}
