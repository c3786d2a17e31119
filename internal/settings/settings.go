package settings

import "time"

// AfterHoursBehavior is the customer's configured handling for contacts
// outside business hours.
type AfterHoursBehavior string

const (
	AfterHoursVoicemail     AfterHoursBehavior = "voicemail"
	AfterHoursLeadCapture   AfterHoursBehavior = "lead_capture"
	AfterHoursEmergencyOnly AfterHoursBehavior = "emergency_only"
)

// CustomerSettings is the raw per-customer configuration fetched from
// storage. Every field may be absent; the engine treats missing values as
// "no override" and applies vertical defaults.
type CustomerSettings struct {
	CustomerID          string             `json:"customer_id"`
	BusinessName        string             `json:"business_name"`
	BusinessType        string             `json:"business_type"`
	AppointmentsEnabled *bool              `json:"appointments_enabled"`
	LeadCaptureEnabled  *bool              `json:"lead_capture_enabled"`
	AfterHoursBehavior  AfterHoursBehavior `json:"after_hours_behavior"`
	TransferNumber      string             `json:"transfer_number"`
	KnowledgeContent    string             `json:"knowledge_content"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// HasTransferNumber reports whether a human transfer target is configured.
func (s *CustomerSettings) HasTransferNumber() bool {
	return s != nil && s.TransferNumber != ""
}
