package media

// Veo model identifiers accepted by the Gemini API.
const (
	ModelVeo2        = "veo-2.0-generate-001"
	ModelVeo3        = "veo-3.0-generate-001"
	ModelVeo3Fast    = "veo-3.0-fast-generate-001"
	ModelVeo31       = "veo-3.1-generate-preview"
	ModelVeo31Fast   = "veo-3.1-fast-generate-preview"
)

// DefaultModelAlias resolves to the fast Veo 3.0 tier.
const DefaultModelAlias = "fast"

// ModelInfo describes a known video model and its aliases.
type ModelInfo struct {
	ID          string
	Aliases     []string
	Description string
}

// knownModels is the fixed table that alias resolution operates over. Order
// is preserved for listing.
var knownModels = []ModelInfo{
	{
		ID:          ModelVeo2,
		Aliases:     []string{"veo-2"},
		Description: "Veo 2.0, stable",
	},
	{
		ID:          ModelVeo3,
		Aliases:     []string{"veo-3"},
		Description: "Veo 3.0, stable",
	},
	{
		ID:          ModelVeo3Fast,
		Aliases:     []string{"veo-3-fast", "fast"},
		Description: "Veo 3.0 fast tier, stable",
	},
	{
		ID:          ModelVeo31,
		Aliases:     []string{"veo-3.1"},
		Description: "Veo 3.1, preview",
	},
	{
		ID:          ModelVeo31Fast,
		Aliases:     []string{"veo-3.1-fast"},
		Description: "Veo 3.1 fast tier, preview",
	},
}

// ResolveModel maps a model alias or literal model identifier to a concrete
// model identifier. It is a pure function over the known model table and
// returns *UnknownModelError for anything outside it.
func ResolveModel(nameOrAlias string) (string, error) {
	if nameOrAlias == "" {
		nameOrAlias = DefaultModelAlias
	}
	for _, m := range knownModels {
		if m.ID == nameOrAlias {
			return m.ID, nil
		}
		for _, alias := range m.Aliases {
			if alias == nameOrAlias {
				return m.ID, nil
			}
		}
	}
	return "", &UnknownModelError{Model: nameOrAlias}
}

// KnownModels returns the known video models in a stable order.
func KnownModels() []ModelInfo {
	models := make([]ModelInfo, len(knownModels))
	copy(models, knownModels)
	return models
}
