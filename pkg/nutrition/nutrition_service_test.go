package nutrition

import (
	"FoodTracker-Backend/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSuggestions(t *testing.T) {
	svc := NewNutritionService()

	res := svc.GenerateSuggestions(context.Background(), domain.NutritionSuggestionsRequest{
		FoodItems: []domain.SuggestionFoodItem{
			{Name: "rice", Calories: 150, Protein: 4, Fiber: 1},
			{Name: "chicken", Calories: 100, Protein: 6, Fiber: 2},
		},
		UserGoals: domain.UserGoals{DailyCalories: 2000},
	})

	assert.Equal(t, 59, res.MealScore)
	assert.Contains(t, res.NextMealAdvice, "protein-rich")
	assert.Contains(t, res.Suggestions, "Consider adding more protein to this meal")
}

func TestGenerateSuggestions_InvalidTotalsFallback(t *testing.T) {
	svc := NewNutritionService()

	res := svc.GenerateSuggestions(context.Background(), domain.NutritionSuggestionsRequest{
		FoodItems: []domain.SuggestionFoodItem{{Name: "mystery", Calories: -100}},
	})

	assert.Equal(t, domain.NutritionSuggestions{
		Suggestions:    []string{domain.MessageFallbackSuggestion},
		MealScore:      0,
		NextMealAdvice: domain.MessageFallbackNextMealAdvice,
	}, res)
}

func TestCalculateGoals(t *testing.T) {
	res := NewNutritionService().CalculateGoals(context.Background(), domain.UserProfileRequest{
		Age: 30, Gender: "male", HeightCM: 180, WeightKG: 80, ActivityLevel: "active",
	})

	assert.InDelta(t, 1780*1.725, res.RecommendedDailyCalories, 1e-9)
}
