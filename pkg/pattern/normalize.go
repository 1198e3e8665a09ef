package pattern

import (
	"FoodTracker-Backend/domain"
	"strings"
)

// NormalizeMeals maps client meal payloads onto MealRecord, preferring the camelCase
// field when both spellings are present and filling the documented defaults.
func NormalizeMeals(raw []domain.RawMealRecord) []domain.MealRecord {
	meals := make([]domain.MealRecord, 0, len(raw))
	for _, r := range raw {
		ingredients := r.Ingredients
		if len(ingredients) == 0 {
			ingredients = r.DetectedIngredients
		}

		meals = append(meals, domain.MealRecord{
			Timestamp:   r.Timestamp.Time,
			Ingredients: cleanIngredients(ingredients),
			Cuisine:     firstNonEmpty(r.Cuisine, r.CuisineGuess),
			PortionSize: firstNonEmpty(r.PortionSize, r.PortionSizeEstimate, domain.DefaultPortionSize),
			MealType:    firstNonEmpty(r.MealType, r.MealTypeGuess, domain.DefaultMealType),
			Location:    firstNonEmpty(r.Location, domain.DefaultLocation),
			MacroGuess:  firstNonEmpty(r.MacroGuess, r.MacroAppearanceEstimate, domain.DefaultMacroGuess),
			Calories:    r.Calories.Float64(),
			Carbs:       r.Carbs.Float64(),
			Protein:     r.Protein.Float64(),
			Fat:         r.Fat.Float64(),
		})
	}
	return meals
}

func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, ing := range in {
		if s := strings.TrimSpace(ing); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
