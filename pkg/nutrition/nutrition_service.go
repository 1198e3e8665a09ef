package nutrition

import (
	"FoodTracker-Backend/domain"
	"context"
	"math"

	"github.com/gofiber/fiber/v2/log"
)

type (
	NutritionService interface {
		GenerateSuggestions(ctx context.Context, req domain.NutritionSuggestionsRequest) domain.NutritionSuggestions
		CalculateGoals(ctx context.Context, req domain.UserProfileRequest) domain.UserGoalsResponse
	}

	nutritionService struct{}
)

func NewNutritionService() NutritionService {
	return &nutritionService{}
}

func (s *nutritionService) GenerateSuggestions(ctx context.Context, req domain.NutritionSuggestionsRequest) domain.NutritionSuggestions {
	items := make([]domain.EnrichedFoodItem, 0, len(req.FoodItems))
	for _, f := range req.FoodItems {
		item := domain.EnrichedFoodItem{}
		item.Name = f.Name
		item.Calories = f.Calories.Float64()
		item.Protein = f.Protein.Float64()
		item.Carbs = f.Carbs.Float64()
		item.Fat = f.Fat.Float64()
		item.Fiber = f.Fiber.Float64()
		items = append(items, item)
	}

	totals := CalculateTotals(items)
	if !validTotals(totals) {
		log.Warnf("suggestions: unusable totals %+v, returning fallback", totals)
		return domain.NutritionSuggestions{
			Suggestions:    []string{domain.MessageFallbackSuggestion},
			MealScore:      0,
			NextMealAdvice: domain.MessageFallbackNextMealAdvice,
		}
	}

	return domain.NutritionSuggestions{
		Suggestions:    GoalSuggestions(totals, req.UserGoals),
		MealScore:      MealScore(totals, req.UserGoals),
		NextMealAdvice: NextMealAdvice(totals),
	}
}

func (s *nutritionService) CalculateGoals(ctx context.Context, req domain.UserProfileRequest) domain.UserGoalsResponse {
	return GoalsFromProfile(req)
}

func validTotals(t domain.NutritionTotals) bool {
	for _, v := range []float64{t.Calories, t.Protein, t.Carbs, t.Fat, t.Fiber} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}
