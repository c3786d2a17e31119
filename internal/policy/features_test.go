package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadline/internal/settings"
	"leadline/internal/vertical"
)

func boolPtr(v bool) *bool { return &v }

func TestBuildFeatureOverrides(t *testing.T) {
	t.Run("Should return empty overrides for nil settings", func(t *testing.T) {
		overrides := BuildFeatureOverrides(nil)
		// no transfer number either, but nil settings short-circuit first
		assert.Empty(t, overrides)
	})

	t.Run("Should disable lead capture only when explicitly false", func(t *testing.T) {
		overrides := BuildFeatureOverrides(&settings.CustomerSettings{
			LeadCaptureEnabled: boolPtr(false),
			TransferNumber:     "+15551234567",
		})
		assert.Equal(t, vertical.FlagOff, overrides[vertical.FeatureLeadCapture])

		overrides = BuildFeatureOverrides(&settings.CustomerSettings{
			LeadCaptureEnabled: boolPtr(true),
			TransferNumber:     "+15551234567",
		})
		assert.NotContains(t, overrides, vertical.FeatureLeadCapture)

		overrides = BuildFeatureOverrides(&settings.CustomerSettings{
			TransferNumber: "+15551234567",
		})
		assert.NotContains(t, overrides, vertical.FeatureLeadCapture)
	})

	t.Run("Should map appointments toggle to both states", func(t *testing.T) {
		overrides := BuildFeatureOverrides(&settings.CustomerSettings{
			AppointmentsEnabled: boolPtr(true),
			TransferNumber:      "+15551234567",
		})
		assert.Equal(t, vertical.FlagOn, overrides[vertical.FeatureAppointmentBooking])

		overrides = BuildFeatureOverrides(&settings.CustomerSettings{
			AppointmentsEnabled: boolPtr(false),
			TransferNumber:      "+15551234567",
		})
		assert.Equal(t, vertical.FlagOff, overrides[vertical.FeatureAppointmentBooking])
	})

	t.Run("Should leave appointments alone when the toggle is absent", func(t *testing.T) {
		overrides := BuildFeatureOverrides(&settings.CustomerSettings{
			TransferNumber: "+15551234567",
		})
		assert.NotContains(t, overrides, vertical.FeatureAppointmentBooking)
	})

	t.Run("Should map after-hours behaviors", func(t *testing.T) {
		overrides := BuildFeatureOverrides(&settings.CustomerSettings{
			AfterHoursBehavior: settings.AfterHoursVoicemail,
			TransferNumber:     "+15551234567",
		})
		assert.Equal(t, vertical.FlagOff, overrides[vertical.FeatureAfterHoursHandling])
		assert.Equal(t, vertical.FlagOff, overrides[vertical.FeatureEmergencyEscalation])

		overrides = BuildFeatureOverrides(&settings.CustomerSettings{
			AfterHoursBehavior: settings.AfterHoursLeadCapture,
			TransferNumber:     "+15551234567",
		})
		assert.Equal(t, vertical.FlagOn, overrides[vertical.FeatureAfterHoursHandling])
		assert.Equal(t, vertical.FlagOff, overrides[vertical.FeatureEmergencyEscalation])

		overrides = BuildFeatureOverrides(&settings.CustomerSettings{
			AfterHoursBehavior: settings.AfterHoursEmergencyOnly,
			TransferNumber:     "+15551234567",
		})
		assert.Equal(t, vertical.FlagOn, overrides[vertical.FeatureAfterHoursHandling])
		assert.Equal(t, vertical.FlagOn, overrides[vertical.FeatureEmergencyEscalation])
	})

	t.Run("Should not touch after-hours flags for unknown behavior", func(t *testing.T) {
		overrides := BuildFeatureOverrides(&settings.CustomerSettings{
			AfterHoursBehavior: "carrier_pigeon",
			TransferNumber:     "+15551234567",
		})
		assert.NotContains(t, overrides, vertical.FeatureAfterHoursHandling)
		assert.NotContains(t, overrides, vertical.FeatureEmergencyEscalation)
	})

	t.Run("Should disable transfer without a transfer number", func(t *testing.T) {
		overrides := BuildFeatureOverrides(&settings.CustomerSettings{})
		assert.Equal(t, vertical.FlagOff, overrides[vertical.FeatureTransferToHuman])

		overrides = BuildFeatureOverrides(&settings.CustomerSettings{
			TransferNumber: "+15551234567",
		})
		assert.NotContains(t, overrides, vertical.FeatureTransferToHuman)
	})
}
