package vertical

// Compliance id lists. By convention the two lists are disjoint; nothing
// enforces that, and a vertical somehow present in both would receive both
// modifier blocks, medical first.
var (
	medicalVerticalIDs = []int{9, 10, 11, 12}
	legalVerticalIDs   = []int{13}
)

var medicalGuardrails = []string{
	"You are not a medical professional and must never diagnose conditions, interpret symptoms, or recommend treatments or medications.",
	"If a caller describes symptoms that could be life-threatening, instruct them to call emergency services immediately before doing anything else.",
	"Treat every health detail a caller shares as confidential patient information. Never repeat it to anyone else or include it in messages.",
	"When a caller asks a clinical question, state clearly that only the provider can answer it and offer to book an appointment or take a message.",
}

var legalGuardrails = []string{
	"You are not an attorney and must never give legal advice, predict case outcomes, or assess whether a caller has a valid claim.",
	"Make clear when asked that speaking with you does not create an attorney-client relationship.",
	"Treat everything a caller shares about their matter as confidential. Never confirm or deny that anyone is a client of the firm.",
	"When a caller asks a legal question, offer to schedule a consultation with an attorney rather than answering it.",
}

// ComplianceClass reports whether a vertical is medical, legal, or neither.
type ComplianceClass struct {
	Medical bool
	Legal   bool
}

// Classify returns the compliance class of a vertical id.
func Classify(id int) ComplianceClass {
	return ComplianceClass{
		Medical: containsID(medicalVerticalIDs, id),
		Legal:   containsID(legalVerticalIDs, id),
	}
}

// ComplianceModifiers returns the fixed guardrail sentences for a vertical:
// the medical block first, then the legal block. Non-compliance verticals
// get an empty slice.
func ComplianceModifiers(id int) []string {
	class := Classify(id)
	var modifiers []string
	if class.Medical {
		modifiers = append(modifiers, medicalGuardrails...)
	}
	if class.Legal {
		modifiers = append(modifiers, legalGuardrails...)
	}
	return modifiers
}

func containsID(ids []int, id int) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
