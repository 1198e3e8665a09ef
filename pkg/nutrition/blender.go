package nutrition

import (
	"FoodTracker-Backend/domain"
	"math"
	"slices"

	"github.com/google/uuid"
)

// unverifiedConfidenceFactor scales the model's confidence when no reference row backs it.
const unverifiedConfidenceFactor = 0.8

var newItemID = func() string {
	return uuid.NewString()
}

// Blend combines an observation with an optional reference row. With a reference, every
// macro is the confidence-weighted average of reference and observed values; without one
// the observed values are kept and confidence is scaled down.
func Blend(obs domain.FoodObservation, ref *ReferenceEntry) domain.EnrichedFoodItem {
	item := domain.EnrichedFoodItem{
		ID:              newItemID(),
		FoodObservation: obs,
	}
	item.Ingredients = slices.Clone(obs.Ingredients)

	if ref != nil {
		c := obs.Confidence
		item.Calories = math.Round(weigh(ref.Profile.Calories, obs.Calories, c))
		item.Protein = roundTenth(weigh(ref.Profile.Protein, obs.Protein, c))
		item.Carbs = roundTenth(weigh(ref.Profile.Carbs, obs.Carbs, c))
		item.Fat = roundTenth(weigh(ref.Profile.Fat, obs.Fat, c))
		item.Fiber = roundTenth(weigh(ref.Profile.Fiber, obs.Fiber, c))
		item.Verified = true
	} else {
		item.Confidence = obs.Confidence * unverifiedConfidenceFactor
		item.Verified = false
	}

	item.HealthScore = HealthScore(item.Name, item.MacroProfile)
	return item
}

func weigh(reference, observed, confidence float64) float64 {
	return reference*confidence + observed*(1-confidence)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
