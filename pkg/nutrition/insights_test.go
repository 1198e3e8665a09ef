package nutrition

import (
	"FoodTracker-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthInsights(t *testing.T) {
	t.Run("nothing fires", func(t *testing.T) {
		got := HealthInsights(domain.NutritionTotals{Calories: 500, Protein: 25, Fat: 15, Fiber: 6})
		assert.Equal(t, []string{DefaultEncouragement}, got)
	})

	t.Run("light meal", func(t *testing.T) {
		got := HealthInsights(domain.NutritionTotals{Calories: 150, Protein: 10, Fat: 5, Fiber: 2})
		assert.Equal(t, []string{
			"Consider adding more protein to this meal",
			"Add more fiber-rich foods like vegetables or whole grains",
			"Consider adding healthy fats like avocado or nuts",
			"This might be a light meal - consider adding more food",
		}, got)
	})

	t.Run("heavy meal", func(t *testing.T) {
		got := HealthInsights(domain.NutritionTotals{Calories: 1200, Protein: 60, Fat: 50, Fiber: 8})
		assert.Equal(t, []string{
			"High protein meal - great for muscle building!",
			"This meal is high in fat - consider lighter options",
			"High calorie meal - consider portion control",
		}, got)
	})
}

func TestGoalSuggestions(t *testing.T) {
	t.Run("weight loss", func(t *testing.T) {
		totals := domain.NutritionTotals{Calories: 900, Protein: 25, Fat: 15, Fiber: 3}
		got := GoalSuggestions(totals, domain.UserGoals{Goal: domain.GoalWeightLoss, DailyCalories: 2000})
		assert.Equal(t, []string{
			"This meal is high in calories for weight loss. Consider smaller portions.",
			"Add more fiber-rich foods to help with satiety and weight loss.",
			"Add more fiber-rich foods like vegetables or whole grains",
			"High calorie meal - consider portion control",
		}, got)
	})

	t.Run("muscle gain", func(t *testing.T) {
		totals := domain.NutritionTotals{Calories: 400, Protein: 20, Fat: 15, Fiber: 6}
		got := GoalSuggestions(totals, domain.UserGoals{Goal: domain.GoalMuscleGain, DailyCalories: 3000})
		assert.Equal(t, []string{
			"Add more protein to support muscle growth.",
			"Consider adding more calories for muscle building.",
		}, got)
	})

	t.Run("maintenance falls back to encouragement", func(t *testing.T) {
		totals := domain.NutritionTotals{Calories: 500, Protein: 25, Fat: 15, Fiber: 6}
		got := GoalSuggestions(totals, domain.UserGoals{Goal: domain.GoalMaintenance})
		assert.Equal(t, []string{DefaultEncouragement}, got)
	})
}

func TestNextMealAdvice(t *testing.T) {
	assert.Contains(t, NextMealAdvice(domain.NutritionTotals{Protein: 10, Fiber: 10, Calories: 600}), "protein-rich")
	assert.Contains(t, NextMealAdvice(domain.NutritionTotals{Protein: 30, Fiber: 2, Calories: 600}), "fiber intake")
	assert.Contains(t, NextMealAdvice(domain.NutritionTotals{Protein: 30, Fiber: 8, Calories: 250}), "more substantial meal")
	assert.Contains(t, NextMealAdvice(domain.NutritionTotals{Protein: 30, Fiber: 8, Calories: 600}), "Great meal!")
}

func TestDailySuggestions(t *testing.T) {
	goals := domain.UserGoals{DailyCalories: 2000, ProteinGoal: 100}
	progress := domain.DailyProgress{
		Totals:             domain.NutritionTotals{Calories: 1000, Protein: 50},
		AverageHealthScore: 7,
		ItemCount:          2,
	}
	breakdown := []domain.MealBreakdown{
		{MealType: "breakfast", ItemCount: 2},
		{MealType: "lunch"},
		{MealType: "dinner"},
		{MealType: "snack"},
	}

	got := DailySuggestions(progress, goals, breakdown)

	assert.Equal(t, []string{
		"Consider adding healthy snacks to meet your calorie goals",
		"Add more lean proteins like chicken, fish, or legumes",
		"A balanced lunch helps maintain energy throughout the day",
		"A nutritious dinner supports overnight recovery",
		"Remember to stay hydrated throughout the day",
	}, got)
}

func TestDailySuggestions_LowHealthScore(t *testing.T) {
	progress := domain.DailyProgress{
		Totals:             domain.NutritionTotals{Calories: 2600},
		AverageHealthScore: 4,
		ItemCount:          3,
	}
	breakdown := []domain.MealBreakdown{
		{MealType: "breakfast", ItemCount: 1},
		{MealType: "lunch", ItemCount: 1},
		{MealType: "dinner", ItemCount: 1},
	}

	got := DailySuggestions(progress, domain.UserGoals{DailyCalories: 2000}, breakdown)

	assert.Equal(t, []string{
		"Try reducing portion sizes or choosing lower-calorie options",
		"Include more fruits and vegetables in your meals",
		"Choose whole grains over refined carbohydrates",
		"Limit processed foods and added sugars",
		"Remember to stay hydrated throughout the day",
	}, got)
}
