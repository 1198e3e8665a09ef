package nutrition

import (
	"FoodTracker-Backend/domain"
	"fmt"
	"math"
)

// EnrichmentResult is either a set of enriched items or, when any observation could not
// be blended, the untouched original observations together with the reason.
type EnrichmentResult struct {
	Foods    []domain.EnrichedFoodItem
	Original []domain.FoodObservation
	Err      error
}

func (r EnrichmentResult) Enriched() bool {
	return r.Err == nil
}

// Enrich matches every observation against the reference table and blends it. Enrichment
// is all or nothing: a single invalid observation returns the originals unchanged.
func Enrich(observations []domain.FoodObservation) EnrichmentResult {
	for i, obs := range observations {
		if err := validateObservation(obs); err != nil {
			return EnrichmentResult{
				Original: observations,
				Err:      fmt.Errorf("observation %d (%q): %w", i, obs.Name, err),
			}
		}
	}

	foods := make([]domain.EnrichedFoodItem, 0, len(observations))
	for _, obs := range observations {
		var ref *ReferenceEntry
		if entry, ok := FindBestMatch(obs.Name); ok {
			ref = &entry
		}
		foods = append(foods, Blend(obs, ref))
	}

	return EnrichmentResult{Foods: foods}
}

func validateObservation(obs domain.FoodObservation) error {
	macros := []struct {
		field string
		value float64
	}{
		{"calories", obs.Calories},
		{"protein", obs.Protein},
		{"carbs", obs.Carbs},
		{"fat", obs.Fat},
		{"fiber", obs.Fiber},
	}
	for _, m := range macros {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) || m.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", domain.ErrInvalidObservation, m.field, m.value)
		}
	}

	if math.IsNaN(obs.Confidence) || obs.Confidence < 0 || obs.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be within [0,1], got %v", domain.ErrInvalidObservation, obs.Confidence)
	}

	return nil
}
