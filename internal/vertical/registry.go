package vertical

import "go.uber.org/zap"

// GenericVerticalID is the mandatory fallback vertical. It must always
// resolve to a fully populated configuration.
const GenericVerticalID = 0

// GetVerticalConfig returns the configuration for a vertical id. Unknown ids
// fall back to the generic local business config with a non-fatal warning.
// All other packages must go through this function rather than indexing the
// table so the fallback holds everywhere.
func GetVerticalConfig(id int) PromptConfig {
	cfg, ok := registry[id]
	if !ok {
		zap.L().Warn("unknown vertical id, falling back to generic local business",
			zap.Int("vertical_id", id))
		return registry[GenericVerticalID]
	}
	return cfg
}

// RegisteredVerticalIDs returns every id present in the registry.
func RegisteredVerticalIDs() []int {
	ids := make([]int, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}

var registry = buildRegistry()

func buildRegistry() map[int]PromptConfig {
	m := make(map[int]PromptConfig, len(homeServiceConfigs)+len(professionalConfigs))
	for _, set := range [][]PromptConfig{homeServiceConfigs, professionalConfigs} {
		for _, cfg := range set {
			m[cfg.ID] = cfg
		}
	}
	return m
}
