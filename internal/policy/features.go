package policy

import (
	"leadline/internal/settings"
	"leadline/internal/vertical"
)

// BuildFeatureOverrides derives the partial feature-flag overrides implied
// by a customer's raw settings. Only keys the settings actually override are
// present, so vertical defaults survive the overlay for everything else.
func BuildFeatureOverrides(s *settings.CustomerSettings) vertical.FeatureOverrides {
	overrides := vertical.FeatureOverrides{}
	if s == nil {
		return overrides
	}

	if s.LeadCaptureEnabled != nil && !*s.LeadCaptureEnabled {
		overrides[vertical.FeatureLeadCapture] = vertical.FlagOff
	}

	if s.AppointmentsEnabled != nil {
		if *s.AppointmentsEnabled {
			overrides[vertical.FeatureAppointmentBooking] = vertical.FlagOn
		} else {
			overrides[vertical.FeatureAppointmentBooking] = vertical.FlagOff
		}
	}

	switch s.AfterHoursBehavior {
	case settings.AfterHoursVoicemail:
		overrides[vertical.FeatureAfterHoursHandling] = vertical.FlagOff
		overrides[vertical.FeatureEmergencyEscalation] = vertical.FlagOff
	case settings.AfterHoursLeadCapture:
		overrides[vertical.FeatureAfterHoursHandling] = vertical.FlagOn
		overrides[vertical.FeatureEmergencyEscalation] = vertical.FlagOff
	case settings.AfterHoursEmergencyOnly:
		overrides[vertical.FeatureAfterHoursHandling] = vertical.FlagOn
		overrides[vertical.FeatureEmergencyEscalation] = vertical.FlagOn
	}

	if !s.HasTransferNumber() {
		overrides[vertical.FeatureTransferToHuman] = vertical.FlagOff
	}

	return overrides
}
