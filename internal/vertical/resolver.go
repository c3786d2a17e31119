package vertical

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

type keywordMapping struct {
	keyword string
	id      int
}

// verticalKeywords maps normalized business-type keywords to vertical ids.
// Order matters: the fuzzy pass below returns the FIRST entry that matches,
// so when two keywords contain each other the earlier one wins. Keep primary
// spellings before looser aliases.
var verticalKeywords = []keywordMapping{
	{"plumbing", 1},
	{"plumber", 1},
	{"drain_cleaning", 1},
	{"hvac", 2},
	{"heating_and_cooling", 2},
	{"air_conditioning", 2},
	{"furnace_repair", 2},
	{"electrical", 3},
	{"electrician", 3},
	{"roofing", 4},
	{"roofer", 4},
	{"roof_repair", 4},
	{"landscaping", 5},
	{"landscaper", 5},
	{"lawn_care", 5},
	{"tree_service", 5},
	{"pest_control", 6},
	{"exterminator", 6},
	{"cleaning", 7},
	{"maid_service", 7},
	{"janitorial", 7},
	{"auto_repair", 8},
	{"mechanic", 8},
	{"auto_shop", 8},
	{"car_repair", 8},
	{"dentistry", 9},
	{"dentist", 9},
	{"dental", 9},
	{"orthodontist", 9},
	{"medical_clinic", 10},
	{"medical", 10},
	{"clinic", 10},
	{"doctor", 10},
	{"physician", 10},
	{"urgent_care", 10},
	{"chiropractic", 11},
	{"chiropractor", 11},
	{"veterinary", 12},
	{"veterinarian", 12},
	{"vet_clinic", 12},
	{"animal_hospital", 12},
	{"law_firm", 13},
	{"lawyer", 13},
	{"attorney", 13},
	{"legal_services", 13},
	{"real_estate", 14},
	{"realtor", 14},
	{"insurance", 15},
	{"insurance_agency", 15},
	{"salon", 16},
	{"spa", 16},
	{"barber", 16},
	{"hair_salon", 16},
	{"nail_salon", 16},
	{"gym", 17},
	{"fitness", 17},
	{"personal_training", 17},
	{"yoga_studio", 17},
	{"restaurant", 18},
	{"cafe", 18},
	{"catering", 18},
	{"property_management", 19},
	{"property_manager", 19},
	{"moving", 20},
	{"movers", 20},
	{"moving_company", 20},
}

var businessTypeSeparators = regexp.MustCompile(`[\s\-]+`)

func normalizeBusinessType(businessType string) string {
	normalized := strings.ToLower(strings.TrimSpace(businessType))
	return businessTypeSeparators.ReplaceAllString(normalized, "_")
}

// ResolveVerticalID maps a free-text business-type string to a vertical id.
// Exact keyword match first, then a first-match-wins fuzzy pass where either
// side may contain the other. Unresolvable input falls back to the generic
// vertical with a non-fatal notice.
func ResolveVerticalID(businessType string) int {
	if strings.TrimSpace(businessType) == "" {
		zap.L().Info("empty business type, using generic vertical")
		return GenericVerticalID
	}

	normalized := normalizeBusinessType(businessType)

	for _, entry := range verticalKeywords {
		if entry.keyword == normalized {
			return entry.id
		}
	}

	for _, entry := range verticalKeywords {
		if strings.Contains(normalized, entry.keyword) || strings.Contains(entry.keyword, normalized) {
			return entry.id
		}
	}

	zap.L().Info("unresolved business type, using generic vertical",
		zap.String("business_type", businessType))
	return GenericVerticalID
}
