package policy

// Restricted-topic sets. The safety set is included in every policy; the
// others are added based on compliance class and the resolved pricing flag.
var (
	SafetyTopics = []string{
		"self_harm",
		"violence",
		"illegal_activity",
		"explicit_content",
		"personal_data_of_others",
	}

	MedicalTopics = []string{
		"medical_diagnosis",
		"treatment_recommendations",
		"medication_dosage",
		"test_results",
	}

	LegalTopics = []string{
		"legal_advice",
		"case_outcome_predictions",
		"claim_validity",
		"settlement_amounts",
	}

	FinancialTopics = []string{
		"pricing_commitments",
		"discounts",
		"payment_terms",
		"refunds",
	}
)

// Refusal template keys. PRIMARY_REFUSAL is rewritten per policy to the
// medical, legal, or generic-intake template.
const (
	RefusalPrimary             = "PRIMARY_REFUSAL"
	RefusalMedicalNoDiagnosis  = "MEDICAL_NO_DIAGNOSIS"
	RefusalLegalNoAdvice       = "LEGAL_NO_ADVICE"
	RefusalGenericIntake       = "GENERIC_INTAKE"
	RefusalBookingUnavailable  = "BOOKING_UNAVAILABLE"
	RefusalTransferUnavailable = "TRANSFER_UNAVAILABLE"
	RefusalPricingUnavailable  = "PRICING_UNAVAILABLE"
)

// baseRefusalTemplates returns a fresh copy of the fixed template
// dictionary. Each policy gets its own map so PRIMARY_REFUSAL can be set
// without touching shared state.
func baseRefusalTemplates() map[string]string {
	return map[string]string{
		RefusalMedicalNoDiagnosis:  "I'm not able to give medical advice or discuss diagnoses. I can book you an appointment so the provider can help with that directly.",
		RefusalLegalNoAdvice:       "I'm not able to give legal advice or discuss the specifics of your case. I can schedule a consultation with an attorney who can.",
		RefusalGenericIntake:       "I'm not able to help with that directly, but I can take your details and have the right person follow up with you.",
		RefusalBookingUnavailable:  "I'm not able to book appointments right now. I can take your details and someone will call you back to schedule.",
		RefusalTransferUnavailable: "I'm not able to transfer you to a team member at the moment, but I can take a message and make sure it reaches them.",
		RefusalPricingUnavailable:  "I'm not able to quote prices. I can arrange for someone from the team to follow up with accurate pricing.",
		RefusalPrimary:             "I'm not able to help with that directly, but I can take your details and have the right person follow up with you.",
	}
}
