package nutrition

import (
	"FoodTracker-Backend/domain"
	"math"
)

// MealScore rates a meal from 0 to 100 as four capped 25-point parts: protein, fiber,
// calorie fit against 30% of the daily goal, and variety.
func MealScore(totals domain.NutritionTotals, goals domain.UserGoals) int {
	protein := math.Min(25, totals.Protein/30*25)
	fiber := math.Min(25, totals.Fiber/10*25)

	calorie := 15.0
	if goals.DailyCalories > 0 {
		calorie = math.Max(0, 25-math.Abs(totals.Calories-goals.DailyCalories*0.3)/50)
	}

	variety := 15.0
	if totals.Protein > 0 && totals.Fiber > 0 {
		variety = 25
	}

	return int(math.Round(protein + fiber + calorie + variety))
}
