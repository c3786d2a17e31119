package policy

import (
	"strings"

	"leadline/internal/settings"
	"leadline/internal/vertical"
)

// FeatureStates are the derived booleans callers branch on. Pricing is the
// only one requiring a strict ON; the rest treat OPTIONAL as enabled.
type FeatureStates struct {
	BookingEnabled     bool `json:"booking_enabled"`
	EscalationEnabled  bool `json:"escalation_enabled"`
	AfterHoursEnabled  bool `json:"after_hours_enabled"`
	LeadCaptureEnabled bool `json:"lead_capture_enabled"`
	PricingEnabled     bool `json:"pricing_enabled"`
	TransferEnabled    bool `json:"transfer_enabled"`
}

// ActionPolicy is the resolved behavioral contract for one agent session.
// Built fresh per request and never mutated afterward.
type ActionPolicy struct {
	VerticalID                   int                    `json:"vertical_id"`
	VerticalName                 string                 `json:"vertical_name"`
	Channel                      vertical.Channel       `json:"channel"`
	AllowedTools                 []string               `json:"allowed_tools"`
	DisabledTools                []string               `json:"disabled_tools"`
	RestrictedTopics             []string               `json:"restricted_topics"`
	RefusalTemplates             map[string]string      `json:"refusal_templates"`
	IsLegalVertical              bool                   `json:"is_legal_vertical"`
	IsMedicalVertical            bool                   `json:"is_medical_vertical"`
	RequiresComplianceGuardrails bool                   `json:"requires_compliance_guardrails"`
	Features                     FeatureStates          `json:"features"`
	FeatureConfig                vertical.FeatureConfig `json:"feature_config"`
}

// toolFeatureMap binds each callable tool to the feature flag that gates it.
// A tool is disabled iff its feature resolves to OFF. The tool names are a
// schema contract with the function-calling catalog.
var toolFeatureMap = []struct {
	tool    string
	feature vertical.FeatureKey
}{
	{"create_booking", vertical.FeatureAppointmentBooking},
	{"reschedule_booking", vertical.FeatureAppointmentBooking},
	{"cancel_booking", vertical.FeatureAppointmentBooking},
	{"check_availability", vertical.FeatureAppointmentBooking},
	{"escalate_emergency", vertical.FeatureEmergencyEscalation},
	{"capture_lead", vertical.FeatureLeadCapture},
	{"schedule_callback", vertical.FeatureCallbackScheduling},
	{"collect_insurance_info", vertical.FeatureInsuranceCollection},
	{"quote_price", vertical.FeaturePriceQuoting},
	{"verify_service_area", vertical.FeatureLocationVerification},
	{"send_sms_followup", vertical.FeatureSMSFollowUp},
	{"transfer_to_human", vertical.FeatureTransferToHuman},
}

// BuildActionPolicy resolves the behavioral contract for a vertical,
// channel, and set of customer overrides. Total: unknown ids fall back to
// the generic vertical inside GetVerticalConfig.
func BuildActionPolicy(verticalID int, channel vertical.Channel, overrides vertical.FeatureOverrides) *ActionPolicy {
	cfg := vertical.GetVerticalConfig(verticalID)
	features := cfg.Features.WithOverrides(overrides)
	class := vertical.Classify(cfg.ID)

	states := FeatureStates{
		BookingEnabled:     features.AppointmentBooking != vertical.FlagOff,
		EscalationEnabled:  features.EmergencyEscalation != vertical.FlagOff,
		AfterHoursEnabled:  features.AfterHoursHandling != vertical.FlagOff,
		LeadCaptureEnabled: features.LeadCapture != vertical.FlagOff,
		PricingEnabled:     features.PriceQuoting == vertical.FlagOn,
		TransferEnabled:    features.TransferToHuman != vertical.FlagOff,
	}

	var allowed, disabled []string
	for _, entry := range toolFeatureMap {
		if features.Get(entry.feature) == vertical.FlagOff {
			disabled = append(disabled, entry.tool)
		} else {
			allowed = append(allowed, entry.tool)
		}
	}

	seen := make(map[string]bool, len(disabled))
	for _, tool := range disabled {
		seen[tool] = true
	}
	for _, forbidden := range cfg.Workflow.Forbidden {
		token := normalizeToolName(forbidden)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		disabled = append(disabled, token)
	}

	topics := make([]string, 0, len(SafetyTopics))
	topics = append(topics, SafetyTopics...)
	if class.Medical {
		topics = append(topics, MedicalTopics...)
	}
	if class.Legal {
		topics = append(topics, LegalTopics...)
	}
	if !states.PricingEnabled {
		topics = append(topics, FinancialTopics...)
	}

	refusals := baseRefusalTemplates()
	switch {
	case class.Medical:
		refusals[RefusalPrimary] = refusals[RefusalMedicalNoDiagnosis]
	case class.Legal:
		refusals[RefusalPrimary] = refusals[RefusalLegalNoAdvice]
	default:
		refusals[RefusalPrimary] = refusals[RefusalGenericIntake]
	}

	return &ActionPolicy{
		VerticalID:                   cfg.ID,
		VerticalName:                 cfg.Name,
		Channel:                      channel,
		AllowedTools:                 allowed,
		DisabledTools:                disabled,
		RestrictedTopics:             topics,
		RefusalTemplates:             refusals,
		IsLegalVertical:              class.Legal,
		IsMedicalVertical:            class.Medical,
		RequiresComplianceGuardrails: class.Medical || class.Legal,
		Features:                     states,
		FeatureConfig:                features,
	}
}

// quickVerticalKeywords is a lightweight business-type table for execution
// contexts that should not pull in the full resolver. It is intentionally
// separate from the resolver's ordered table; keep the two in sync by hand.
var quickVerticalKeywords = []struct {
	keyword string
	id      int
}{
	{"plumb", 1},
	{"hvac", 2},
	{"heating", 2},
	{"cooling", 2},
	{"electric", 3},
	{"roof", 4},
	{"landscap", 5},
	{"lawn", 5},
	{"pest", 6},
	{"clean", 7},
	{"auto", 8},
	{"mechanic", 8},
	{"dent", 9},
	{"medical", 10},
	{"clinic", 10},
	{"doctor", 10},
	{"chiro", 11},
	{"vet", 12},
	{"animal", 12},
	{"law", 13},
	{"attorney", 13},
	{"legal", 13},
	{"real estate", 14},
	{"realtor", 14},
	{"insurance", 15},
	{"salon", 16},
	{"spa", 16},
	{"gym", 17},
	{"fitness", 17},
	{"restaurant", 18},
	{"cafe", 18},
	{"property", 19},
	{"moving", 20},
	{"mover", 20},
}

func quickResolveVerticalID(businessType string) int {
	lowered := strings.ToLower(strings.TrimSpace(businessType))
	if lowered == "" {
		return vertical.GenericVerticalID
	}
	for _, entry := range quickVerticalKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.id
		}
	}
	return vertical.GenericVerticalID
}

// BuildActionPolicyFromSettings is the convenience entry point used where
// only raw customer settings are on hand: it derives the vertical id and
// feature overrides, then delegates to BuildActionPolicy.
func BuildActionPolicyFromSettings(s *settings.CustomerSettings, channel vertical.Channel) *ActionPolicy {
	verticalID := vertical.GenericVerticalID
	if s != nil {
		verticalID = quickResolveVerticalID(s.BusinessType)
	}
	return BuildActionPolicy(verticalID, channel, BuildFeatureOverrides(s))
}
