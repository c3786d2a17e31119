package vertical

// Channel is the communication medium of an agent session.
type Channel string

const (
	ChannelPhone    Channel = "phone"
	ChannelWebChat  Channel = "web_chat"
	ChannelWebVoice Channel = "web_voice"
	ChannelSMS      Channel = "sms"
)

// AllChannels lists every channel a vertical must configure.
func AllChannels() []Channel {
	return []Channel{ChannelPhone, ChannelWebChat, ChannelWebVoice, ChannelSMS}
}

// ParseChannel maps a raw string to a Channel, defaulting to phone.
func ParseChannel(s string) (Channel, bool) {
	switch Channel(s) {
	case ChannelPhone, ChannelWebChat, ChannelWebVoice, ChannelSMS:
		return Channel(s), true
	}
	return ChannelPhone, false
}

// FlagState is the tri-state value of a feature flag. Optional means the
// capability is permitted but not mandatory.
type FlagState string

const (
	FlagOn       FlagState = "on"
	FlagOff      FlagState = "off"
	FlagOptional FlagState = "optional"
)

// FeatureKey names one of the ten capability categories. These names are a
// schema contract shared with the tool table and must not change.
type FeatureKey string

const (
	FeatureAppointmentBooking   FeatureKey = "appointment_booking"
	FeatureEmergencyEscalation  FeatureKey = "emergency_escalation"
	FeatureAfterHoursHandling   FeatureKey = "after_hours_handling"
	FeatureLeadCapture          FeatureKey = "lead_capture"
	FeatureCallbackScheduling   FeatureKey = "callback_scheduling"
	FeatureInsuranceCollection  FeatureKey = "insurance_collection"
	FeaturePriceQuoting         FeatureKey = "price_quoting"
	FeatureLocationVerification FeatureKey = "location_verification"
	FeatureSMSFollowUp          FeatureKey = "sms_follow_up"
	FeatureTransferToHuman      FeatureKey = "transfer_to_human"
)

// AllFeatureKeys returns the ten flag keys in their canonical order. The
// order drives the capabilities/restrictions lists in the composed prompt.
func AllFeatureKeys() []FeatureKey {
	return []FeatureKey{
		FeatureAppointmentBooking,
		FeatureEmergencyEscalation,
		FeatureAfterHoursHandling,
		FeatureLeadCapture,
		FeatureCallbackScheduling,
		FeatureInsuranceCollection,
		FeaturePriceQuoting,
		FeatureLocationVerification,
		FeatureSMSFollowUp,
		FeatureTransferToHuman,
	}
}

// FeatureConfig holds the flag value for each of the ten capability
// categories.
type FeatureConfig struct {
	AppointmentBooking   FlagState `json:"appointment_booking"`
	EmergencyEscalation  FlagState `json:"emergency_escalation"`
	AfterHoursHandling   FlagState `json:"after_hours_handling"`
	LeadCapture          FlagState `json:"lead_capture"`
	CallbackScheduling   FlagState `json:"callback_scheduling"`
	InsuranceCollection  FlagState `json:"insurance_collection"`
	PriceQuoting         FlagState `json:"price_quoting"`
	LocationVerification FlagState `json:"location_verification"`
	SMSFollowUp          FlagState `json:"sms_follow_up"`
	TransferToHuman      FlagState `json:"transfer_to_human"`
}

// FeatureOverrides is a partial FeatureConfig: only keys a customer actually
// overrides are present, so absent keys never shadow vertical defaults.
type FeatureOverrides map[FeatureKey]FlagState

// Get returns the flag value for a key.
func (f FeatureConfig) Get(key FeatureKey) FlagState {
	switch key {
	case FeatureAppointmentBooking:
		return f.AppointmentBooking
	case FeatureEmergencyEscalation:
		return f.EmergencyEscalation
	case FeatureAfterHoursHandling:
		return f.AfterHoursHandling
	case FeatureLeadCapture:
		return f.LeadCapture
	case FeatureCallbackScheduling:
		return f.CallbackScheduling
	case FeatureInsuranceCollection:
		return f.InsuranceCollection
	case FeaturePriceQuoting:
		return f.PriceQuoting
	case FeatureLocationVerification:
		return f.LocationVerification
	case FeatureSMSFollowUp:
		return f.SMSFollowUp
	case FeatureTransferToHuman:
		return f.TransferToHuman
	}
	return FlagOff
}

func (f *FeatureConfig) set(key FeatureKey, state FlagState) {
	switch key {
	case FeatureAppointmentBooking:
		f.AppointmentBooking = state
	case FeatureEmergencyEscalation:
		f.EmergencyEscalation = state
	case FeatureAfterHoursHandling:
		f.AfterHoursHandling = state
	case FeatureLeadCapture:
		f.LeadCapture = state
	case FeatureCallbackScheduling:
		f.CallbackScheduling = state
	case FeatureInsuranceCollection:
		f.InsuranceCollection = state
	case FeaturePriceQuoting:
		f.PriceQuoting = state
	case FeatureLocationVerification:
		f.LocationVerification = state
	case FeatureSMSFollowUp:
		f.SMSFollowUp = state
	case FeatureTransferToHuman:
		f.TransferToHuman = state
	}
}

// WithOverrides returns a copy of the config with exactly the overridden
// keys replaced. Shallow overlay: flag values are scalars, override wins.
func (f FeatureConfig) WithOverrides(overrides FeatureOverrides) FeatureConfig {
	merged := f
	for key, state := range overrides {
		merged.set(key, state)
	}
	return merged
}

// Urgency classifies how time-critical a vertical's typical calls are.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// BrainRules are the always/never/escalate/tone instructions governing agent
// conversation for a vertical.
type BrainRules struct {
	UrgencyClassification Urgency
	AlwaysCollect         []string
	NeverDo               []string
	EscalationTriggers    []string
	ToneGuidance          string
	ComplianceNotes       []string
}

// WorkflowPermissions classifies free-text action identifiers. Forbidden
// entries also become disabled-tool tokens after normalization.
type WorkflowPermissions struct {
	Allowed              []string
	Forbidden            []string
	RequiresConfirmation []string
}

// GreetingStyle selects the tone sentence of the channel block.
type GreetingStyle string

const (
	GreetingUrgent       GreetingStyle = "urgent"
	GreetingProfessional GreetingStyle = "professional"
	GreetingWarm         GreetingStyle = "warm"
	GreetingEmpathetic   GreetingStyle = "empathetic"
)

// ResponseLength selects the response-length sentence of the channel block.
type ResponseLength string

const (
	ResponseBrief    ResponseLength = "brief"
	ResponseModerate ResponseLength = "moderate"
	ResponseDetailed ResponseLength = "detailed"
)

// ChannelBehavior configures the agent for one communication medium.
type ChannelBehavior struct {
	PrimaryAction        string
	GreetingStyle        GreetingStyle
	ResponseLength       ResponseLength
	CanShowVisuals       bool
	CanSendLinks         bool
	InterruptionHandling string
	FallbackBehavior     string
}

// PromptConfig is the complete static configuration for one vertical. Every
// vertical in the registry has an entry for all four channels.
type PromptConfig struct {
	ID       int
	Name     string
	Brain    BrainRules
	Features FeatureConfig
	Workflow WorkflowPermissions
	Channels map[Channel]ChannelBehavior
}
