package nutrition

import (
	"FoodTracker-Backend/domain"
	"math"
)

// MealTypes is the display order of meal slots in a day.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// CalculateTotals sums the macros of items field by field.
func CalculateTotals(items []domain.EnrichedFoodItem) domain.NutritionTotals {
	var totals domain.NutritionTotals
	for _, item := range items {
		totals.Calories += item.Calories
		totals.Protein += item.Protein
		totals.Carbs += item.Carbs
		totals.Fat += item.Fat
		totals.Fiber += item.Fiber
	}
	return totals
}

// Progress returns total/goal capped at 1. A zero or negative goal yields 0.
func Progress(total, goal float64) float64 {
	if goal <= 0 || math.IsNaN(total) {
		return 0
	}
	ratio := total / goal
	if ratio < 0 {
		return 0
	}
	return math.Min(ratio, 1.0)
}

func AverageHealthScore(items []domain.EnrichedFoodItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, item := range items {
		sum += item.HealthScore
	}
	return float64(sum) / float64(len(items))
}

// Summarize aggregates a day's items against the user's goals.
func Summarize(items []domain.EnrichedFoodItem, goals domain.UserGoals) domain.DailyProgress {
	totals := CalculateTotals(items)
	avg := AverageHealthScore(items)

	return domain.DailyProgress{
		Totals: totals,
		Progress: domain.GoalProgress{
			Calories: Progress(totals.Calories, goals.DailyCalories),
			Protein:  Progress(totals.Protein, goals.ProteinGoal),
			Carbs:    Progress(totals.Carbs, goals.CarbGoal),
			Fat:      Progress(totals.Fat, goals.FatGoal),
		},
		GoalsMet: domain.GoalsMet{
			Calories:    totals.Calories >= goals.DailyCalories*0.8 && totals.Calories <= goals.DailyCalories*1.2,
			Protein:     totals.Protein >= goals.ProteinGoal*0.7,
			HealthScore: avg >= 6,
		},
		AverageHealthScore: avg,
		ItemCount:          len(items),
	}
}

// MealEntry pairs an item with the meal slot it was eaten in.
type MealEntry struct {
	MealType string
	Item     domain.EnrichedFoodItem
}

// MealBreakdowns groups entries per meal slot, in MealTypes order. Slots outside
// MealTypes are counted as snacks.
func MealBreakdowns(entries []MealEntry) []domain.MealBreakdown {
	grouped := make(map[string][]domain.EnrichedFoodItem, len(MealTypes))
	for _, e := range entries {
		slot := e.MealType
		if !isMealType(slot) {
			slot = domain.DefaultMealType
		}
		grouped[slot] = append(grouped[slot], e.Item)
	}

	out := make([]domain.MealBreakdown, 0, len(MealTypes))
	for _, mealType := range MealTypes {
		items := grouped[mealType]
		out = append(out, domain.MealBreakdown{
			MealType:           mealType,
			Calories:           CalculateTotals(items).Calories,
			ItemCount:          len(items),
			AverageHealthScore: AverageHealthScore(items),
		})
	}
	return out
}

func isMealType(s string) bool {
	for _, t := range MealTypes {
		if t == s {
			return true
		}
	}
	return false
}
