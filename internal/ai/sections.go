package ai

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"leadline/internal/vertical"
)

var greetingToneLines = map[vertical.GreetingStyle]string{
	vertical.GreetingUrgent:       "Open with urgency and focus. Acknowledge the problem immediately and move toward action.",
	vertical.GreetingProfessional: "Open with a courteous, professional greeting on behalf of the business.",
	vertical.GreetingWarm:         "Open with a warm, friendly greeting that makes the customer feel welcome.",
	vertical.GreetingEmpathetic:   "Open gently and acknowledge how the customer is feeling before asking questions.",
}

var responseLengthLines = map[vertical.ResponseLength]string{
	vertical.ResponseBrief:    "Keep responses short: one or two sentences at a time.",
	vertical.ResponseModerate: "Keep responses conversational: two to four sentences at a time.",
	vertical.ResponseDetailed: "Responses may be thorough and detailed when the topic calls for it.",
}

var urgencyLines = map[vertical.Urgency]string{
	vertical.UrgencyCritical: "Treat every contact as potentially critical: assume there may be an emergency until you have ruled it out.",
	vertical.UrgencyHigh:     "Treat contacts as high priority: move quickly to understand the problem.",
	vertical.UrgencyMedium:   "Treat contacts as standard priority: be efficient but unhurried.",
	vertical.UrgencyLow:      "Treat contacts as relaxed inquiries: there is no time pressure.",
}

func greetingToneLine(style vertical.GreetingStyle) string {
	if line, ok := greetingToneLines[style]; ok {
		return line
	}
	// Unrecognized style: default to professional rather than emitting an
	// empty sentence into the prompt.
	zap.L().Warn("unknown greeting style, defaulting to professional",
		zap.String("greeting_style", string(style)))
	return greetingToneLines[vertical.GreetingProfessional]
}

func responseLengthLine(length vertical.ResponseLength) string {
	if line, ok := responseLengthLines[length]; ok {
		return line
	}
	zap.L().Warn("unknown response length, defaulting to moderate",
		zap.String("response_length", string(length)))
	return responseLengthLines[vertical.ResponseModerate]
}

func channelSection(cfg vertical.PromptConfig, channel vertical.Channel) string {
	behavior, ok := cfg.Channels[channel]
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("CHANNEL GUIDELINES\n")
	fmt.Fprintf(&b, "Primary goal on this channel: %s.\n", behavior.PrimaryAction)
	b.WriteString(greetingToneLine(behavior.GreetingStyle))
	b.WriteString("\n")
	b.WriteString(responseLengthLine(behavior.ResponseLength))
	if behavior.CanShowVisuals {
		b.WriteString("\nYou can show images and visual content in this conversation.")
	}
	if behavior.CanSendLinks {
		b.WriteString("\nYou can send clickable links in this conversation.")
	}
	if behavior.InterruptionHandling != "" {
		fmt.Fprintf(&b, "\nIf the customer interrupts: %s.", behavior.InterruptionHandling)
	}
	if behavior.FallbackBehavior != "" {
		fmt.Fprintf(&b, "\nIf you cannot complete the customer's request: %s.", behavior.FallbackBehavior)
	}
	return b.String()
}

func brainSection(brain vertical.BrainRules) string {
	var b strings.Builder
	b.WriteString("CONVERSATION RULES\n")
	if line, ok := urgencyLines[brain.UrgencyClassification]; ok {
		b.WriteString(line)
	} else {
		b.WriteString(urgencyLines[vertical.UrgencyMedium])
	}

	if len(brain.AlwaysCollect) > 0 {
		b.WriteString("\nAlways collect before the conversation ends:")
		for _, item := range brain.AlwaysCollect {
			b.WriteString("\n- " + item)
		}
	}
	if len(brain.NeverDo) > 0 {
		b.WriteString("\nNever do any of the following:")
		for _, item := range brain.NeverDo {
			b.WriteString("\n- " + item)
		}
	}
	if len(brain.EscalationTriggers) > 0 {
		b.WriteString("\nEscalate immediately when:")
		for _, item := range brain.EscalationTriggers {
			b.WriteString("\n- " + item)
		}
	}
	if brain.ToneGuidance != "" {
		b.WriteString("\nTone: " + brain.ToneGuidance)
	}
	if len(brain.ComplianceNotes) > 0 {
		b.WriteString("\nCompliance notes:")
		for _, note := range brain.ComplianceNotes {
			b.WriteString("\n- " + note)
		}
	}
	return b.String()
}

func complianceSection(verticalID int) string {
	modifiers := vertical.ComplianceModifiers(verticalID)
	if len(modifiers) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("COMPLIANCE REQUIREMENTS")
	for _, modifier := range modifiers {
		b.WriteString("\n- " + modifier)
	}
	return b.String()
}

var capabilityPhrases = map[vertical.FeatureKey]string{
	vertical.FeatureAppointmentBooking:   "You can book, reschedule, and cancel appointments.",
	vertical.FeatureEmergencyEscalation:  "You can escalate genuine emergencies to the on-call contact.",
	vertical.FeatureAfterHoursHandling:   "You handle contacts outside business hours following the after-hours procedure.",
	vertical.FeatureLeadCapture:          "You can capture new leads: name, contact details, and what they need.",
	vertical.FeatureCallbackScheduling:   "You can schedule callbacks at times the customer chooses.",
	vertical.FeatureInsuranceCollection:  "You can collect insurance details when relevant to the service.",
	vertical.FeaturePriceQuoting:         "You can quote prices from the published price list.",
	vertical.FeatureLocationVerification: "You can verify whether an address is inside the service area.",
	vertical.FeatureSMSFollowUp:          "You can send SMS follow-ups with confirmations and links.",
	vertical.FeatureTransferToHuman:      "You can transfer the conversation to a human team member when needed.",
}

// restrictionPhrases covers only the flags whose OFF state needs explicit
// prompt language; the rest simply drop their capability line.
var restrictionPhrases = map[vertical.FeatureKey]string{
	vertical.FeatureAppointmentBooking:  "Do not offer to book appointments; collect contact details for a callback instead.",
	vertical.FeatureEmergencyEscalation: "Do not promise emergency dispatch or escalation.",
	vertical.FeatureAfterHoursHandling:  "Outside business hours, direct the customer to leave a voicemail.",
	vertical.FeatureInsuranceCollection: "Do not ask for insurance information.",
	vertical.FeaturePriceQuoting:        "Do not quote prices or estimate costs; route pricing questions to the team.",
	vertical.FeatureSMSFollowUp:         "Do not offer to text the customer.",
	vertical.FeatureTransferToHuman:     "Do not offer to transfer the conversation; take a message instead.",
}

func featureSection(features vertical.FeatureConfig) string {
	var capabilities, restrictions []string
	for _, key := range vertical.AllFeatureKeys() {
		switch features.Get(key) {
		case vertical.FlagOn, vertical.FlagOptional:
			if phrase, ok := capabilityPhrases[key]; ok {
				capabilities = append(capabilities, phrase)
			}
		case vertical.FlagOff:
			if phrase, ok := restrictionPhrases[key]; ok {
				restrictions = append(restrictions, phrase)
			}
		}
	}
	if len(capabilities) == 0 && len(restrictions) == 0 {
		return ""
	}

	var b strings.Builder
	if len(capabilities) > 0 {
		b.WriteString("CAPABILITIES")
		for _, phrase := range capabilities {
			b.WriteString("\n- " + phrase)
		}
	}
	if len(restrictions) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("RESTRICTIONS")
		for _, phrase := range restrictions {
			b.WriteString("\n- " + phrase)
		}
	}
	return b.String()
}

func workflowSection(workflow vertical.WorkflowPermissions) string {
	if len(workflow.Allowed) == 0 && len(workflow.Forbidden) == 0 && len(workflow.RequiresConfirmation) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("WORKFLOW PERMISSIONS")
	writeWorkflowList(&b, "Allowed", workflow.Allowed)
	writeWorkflowList(&b, "Forbidden", workflow.Forbidden)
	writeWorkflowList(&b, "Requires confirmation", workflow.RequiresConfirmation)
	return b.String()
}

func writeWorkflowList(b *strings.Builder, label string, actions []string) {
	if len(actions) == 0 {
		return
	}
	b.WriteString("\n" + label + ":")
	for _, action := range actions {
		b.WriteString("\n- " + humanizeAction(action))
	}
}

func humanizeAction(action string) string {
	words := strings.Split(strings.ReplaceAll(action, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
