package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/settings"
	"leadline/internal/vertical"
)

func TestBuildActionPolicy(t *testing.T) {
	t.Run("Should apply overrides on top of vertical defaults", func(t *testing.T) {
		// plumbing defaults appointment booking on; the override flips it
		p := BuildActionPolicy(1, vertical.ChannelPhone, vertical.FeatureOverrides{
			vertical.FeatureAppointmentBooking: vertical.FlagOff,
		})

		assert.Equal(t, vertical.FlagOff, p.FeatureConfig.AppointmentBooking)
		assert.False(t, p.Features.BookingEnabled)
		// untouched defaults survive the overlay
		assert.Equal(t, vertical.FlagOn, p.FeatureConfig.EmergencyEscalation)
		assert.True(t, p.Features.EscalationEnabled)
	})

	t.Run("Should treat optional as enabled except for pricing", func(t *testing.T) {
		p := BuildActionPolicy(0, vertical.ChannelPhone, vertical.FeatureOverrides{
			vertical.FeaturePriceQuoting:    vertical.FlagOptional,
			vertical.FeatureTransferToHuman: vertical.FlagOptional,
		})

		// pricing requires a strict ON
		assert.False(t, p.Features.PricingEnabled)
		assert.True(t, p.Features.TransferEnabled)

		p = BuildActionPolicy(0, vertical.ChannelPhone, vertical.FeatureOverrides{
			vertical.FeaturePriceQuoting: vertical.FlagOn,
		})
		assert.True(t, p.Features.PricingEnabled)
	})

	t.Run("Should disable every tool mapped to an off feature", func(t *testing.T) {
		p := BuildActionPolicy(1, vertical.ChannelPhone, vertical.FeatureOverrides{
			vertical.FeatureAppointmentBooking: vertical.FlagOff,
		})

		for _, tool := range []string{"create_booking", "reschedule_booking", "cancel_booking", "check_availability"} {
			assert.Contains(t, p.DisabledTools, tool)
			assert.NotContains(t, p.AllowedTools, tool)
		}
		assert.Contains(t, p.AllowedTools, "escalate_emergency")
	})

	t.Run("Should append normalized workflow-forbidden tokens without duplicates", func(t *testing.T) {
		// generic vertical forbids process_payment and change_account_details
		p := BuildActionPolicy(0, vertical.ChannelPhone, nil)

		assert.Contains(t, p.DisabledTools, "process_payment")
		assert.Contains(t, p.DisabledTools, "change_account_details")

		seen := map[string]int{}
		for _, tool := range p.DisabledTools {
			seen[tool]++
		}
		for tool, count := range seen {
			assert.Equal(t, 1, count, "duplicate disabled tool %s", tool)
		}
	})

	t.Run("Should always restrict safety topics", func(t *testing.T) {
		for _, id := range []int{0, 1, 9, 13, 18} {
			p := BuildActionPolicy(id, vertical.ChannelPhone, nil)
			for _, topic := range SafetyTopics {
				assert.Contains(t, p.RestrictedTopics, topic, "vertical %d", id)
			}
		}
	})

	t.Run("Should restrict medical topics for medical verticals", func(t *testing.T) {
		p := BuildActionPolicy(9, vertical.ChannelPhone, nil)
		assert.True(t, p.IsMedicalVertical)
		assert.False(t, p.IsLegalVertical)
		assert.True(t, p.RequiresComplianceGuardrails)
		for _, topic := range MedicalTopics {
			assert.Contains(t, p.RestrictedTopics, topic)
		}
		for _, topic := range LegalTopics {
			assert.NotContains(t, p.RestrictedTopics, topic)
		}
	})

	t.Run("Should restrict legal topics for the legal vertical", func(t *testing.T) {
		p := BuildActionPolicy(13, vertical.ChannelPhone, nil)
		assert.True(t, p.IsLegalVertical)
		assert.True(t, p.RequiresComplianceGuardrails)
		for _, topic := range LegalTopics {
			assert.Contains(t, p.RestrictedTopics, topic)
		}
	})

	t.Run("Should restrict financial topics exactly when pricing is not strictly on", func(t *testing.T) {
		// generic vertical has pricing off
		p := BuildActionPolicy(0, vertical.ChannelPhone, nil)
		for _, topic := range FinancialTopics {
			assert.Contains(t, p.RestrictedTopics, topic)
		}

		p = BuildActionPolicy(0, vertical.ChannelPhone, vertical.FeatureOverrides{
			vertical.FeaturePriceQuoting: vertical.FlagOn,
		})
		for _, topic := range FinancialTopics {
			assert.NotContains(t, p.RestrictedTopics, topic)
		}
	})

	t.Run("Should pick the primary refusal by compliance class", func(t *testing.T) {
		p := BuildActionPolicy(9, vertical.ChannelPhone, nil)
		assert.Equal(t, p.RefusalTemplates[RefusalMedicalNoDiagnosis], p.RefusalTemplates[RefusalPrimary])

		p = BuildActionPolicy(13, vertical.ChannelPhone, nil)
		assert.Equal(t, p.RefusalTemplates[RefusalLegalNoAdvice], p.RefusalTemplates[RefusalPrimary])

		p = BuildActionPolicy(1, vertical.ChannelPhone, nil)
		assert.Equal(t, p.RefusalTemplates[RefusalGenericIntake], p.RefusalTemplates[RefusalPrimary])
	})

	t.Run("Should fall back to the generic vertical for unknown ids", func(t *testing.T) {
		p := BuildActionPolicy(9999, vertical.ChannelWebChat, nil)
		assert.Equal(t, vertical.GenericVerticalID, p.VerticalID)
		assert.Equal(t, "Generic Local Business", p.VerticalName)
		assert.Equal(t, vertical.ChannelWebChat, p.Channel)
	})

	t.Run("Should not share refusal maps between policies", func(t *testing.T) {
		a := BuildActionPolicy(9, vertical.ChannelPhone, nil)
		b := BuildActionPolicy(1, vertical.ChannelPhone, nil)
		assert.NotEqual(t, a.RefusalTemplates[RefusalPrimary], b.RefusalTemplates[RefusalPrimary])
	})
}

func TestBuildActionPolicyFromSettings(t *testing.T) {
	t.Run("Should resolve a dental practice with booking disabled and no transfer", func(t *testing.T) {
		appointments := false
		p := BuildActionPolicyFromSettings(&settings.CustomerSettings{
			BusinessName:        "Smile Dental",
			BusinessType:        "dentist",
			AppointmentsEnabled: &appointments,
		}, vertical.ChannelPhone)

		require.Equal(t, 9, p.VerticalID)
		assert.True(t, p.IsMedicalVertical)
		assert.Contains(t, p.DisabledTools, "create_booking")
		assert.Contains(t, p.DisabledTools, "transfer_to_human")
		assert.Equal(t, p.RefusalTemplates[RefusalMedicalNoDiagnosis], p.RefusalTemplates[RefusalPrimary])
	})

	t.Run("Should fall back to generic for nil settings", func(t *testing.T) {
		p := BuildActionPolicyFromSettings(nil, vertical.ChannelSMS)
		assert.Equal(t, vertical.GenericVerticalID, p.VerticalID)
	})
}

func TestQuickResolveVerticalID(t *testing.T) {
	t.Run("Should match on substrings", func(t *testing.T) {
		assert.Equal(t, 1, quickResolveVerticalID("Bob's Plumbing"))
		assert.Equal(t, 9, quickResolveVerticalID("dental office"))
		assert.Equal(t, 13, quickResolveVerticalID("Smith & Partners Law"))
	})

	t.Run("Should return generic for empty or unknown input", func(t *testing.T) {
		assert.Equal(t, vertical.GenericVerticalID, quickResolveVerticalID(""))
		assert.Equal(t, vertical.GenericVerticalID, quickResolveVerticalID("widgets"))
	})

	t.Run("Should let the first table entry win", func(t *testing.T) {
		// "plumb" appears before "heating" in the table
		assert.Equal(t, 1, quickResolveVerticalID("plumbing and heating"))
	})
}
