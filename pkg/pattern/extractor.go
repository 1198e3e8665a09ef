package pattern

import (
	"FoodTracker-Backend/domain"
	"sort"
	"strings"
)

// Extract computes the structural features of one day of meals. An empty day yields
// zeroed features with empty maps.
func Extract(meals []domain.MealRecord) domain.PatternFeatures {
	features := domain.PatternFeatures{
		IngredientFrequency:  map[string]int{},
		MealTypeDistribution: map[string]int{},
		LocationDistribution: map[string]int{},
	}
	if len(meals) == 0 {
		return features
	}

	byTime := make([]domain.MealRecord, len(meals))
	copy(byTime, meals)
	sort.SliceStable(byTime, func(i, j int) bool {
		return byTime[i].Timestamp.Before(byTime[j].Timestamp)
	})
	first := byTime[0].Timestamp
	last := byTime[len(byTime)-1].Timestamp
	features.FirstMealTime = &first
	features.LastMealTime = &last

	largest := meals[0]
	for _, m := range meals[1:] {
		if m.Calories > largest.Calories {
			largest = m
		}
	}
	features.LargestPortion = &domain.LargestPortion{
		MealType:    orDefault(largest.MealType, domain.DefaultMealType),
		Calories:    largest.Calories,
		PortionSize: orDefault(largest.PortionSize, domain.DefaultPortionSize),
	}

	for _, m := range meals {
		for _, ing := range m.Ingredients {
			features.IngredientFrequency[ing]++
		}

		switch ClassifyMacro(m.MacroGuess) {
		case domain.MacroCarbHeavy:
			features.MacroDistribution.CarbHeavy++
		case domain.MacroProteinRich:
			features.MacroDistribution.ProteinRich++
		case domain.MacroFatHeavy:
			features.MacroDistribution.FatHeavy++
		default:
			features.MacroDistribution.Balanced++
		}

		features.MealTypeDistribution[orDefault(m.MealType, domain.DefaultMealType)]++
		features.LocationDistribution[orDefault(m.Location, domain.DefaultLocation)]++
	}

	return features
}

// ClassifyMacro buckets a free-text macro guess by substring, checking carb, then
// protein, then fat. Anything else, including an empty guess, is balanced.
func ClassifyMacro(guess string) domain.MacroGuess {
	g := strings.ToLower(orDefault(guess, domain.DefaultMacroGuess))
	switch {
	case strings.Contains(g, "carb"):
		return domain.MacroCarbHeavy
	case strings.Contains(g, "protein"):
		return domain.MacroProteinRich
	case strings.Contains(g, "fat"):
		return domain.MacroFatHeavy
	default:
		return domain.MacroBalanced
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
