package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/policy"
	"leadline/internal/vertical"
)

func TestCatalog(t *testing.T) {
	t.Run("Should define one schema per policy tool", func(t *testing.T) {
		catalog := Catalog()
		require.Len(t, catalog, 12)

		names := make(map[string]bool, len(catalog))
		for _, tool := range catalog {
			require.NotNil(t, tool.Function)
			assert.NotEmpty(t, tool.Function.Description)
			names[tool.Function.Name] = true
		}

		for _, name := range []string{
			"create_booking", "reschedule_booking", "cancel_booking", "check_availability",
			"escalate_emergency", "capture_lead", "schedule_callback", "collect_insurance_info",
			"quote_price", "verify_service_area", "send_sms_followup", "transfer_to_human",
		} {
			assert.True(t, names[name], "missing tool %s", name)
		}
	})
}

func TestSessionTools(t *testing.T) {
	t.Run("Should never return a tool the policy disables", func(t *testing.T) {
		p := policy.BuildActionPolicy(1, vertical.ChannelPhone, vertical.FeatureOverrides{
			vertical.FeatureAppointmentBooking: vertical.FlagOff,
			vertical.FeatureSMSFollowUp:        vertical.FlagOff,
		})

		for _, tool := range SessionTools(p) {
			assert.True(t, policy.IsToolAllowed(tool.Function.Name, p),
				"tool %s leaked past the policy", tool.Function.Name)
			assert.NotEqual(t, "create_booking", tool.Function.Name)
			assert.NotEqual(t, "send_sms_followup", tool.Function.Name)
		}
	})

	t.Run("Should return the full catalog when nothing is disabled", func(t *testing.T) {
		p := policy.BuildActionPolicy(1, vertical.ChannelPhone, nil)
		p.DisabledTools = nil
		assert.Len(t, SessionTools(p), len(Catalog()))
	})
}
