package pattern

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/pkg/narrative"
	"context"
)

type (
	PatternService interface {
		SummarizeRaw(ctx context.Context, raw []domain.RawMealRecord) domain.PatternSummaryResponse
		Summarize(ctx context.Context, meals []domain.MealRecord) domain.PatternSummaryResponse
	}

	patternService struct {
		narrativeService narrative.NarrativeService
	}
)

func NewPatternService(narrativeService narrative.NarrativeService) PatternService {
	return &patternService{narrativeService: narrativeService}
}

func (s *patternService) SummarizeRaw(ctx context.Context, raw []domain.RawMealRecord) domain.PatternSummaryResponse {
	return s.Summarize(ctx, NormalizeMeals(raw))
}

func (s *patternService) Summarize(ctx context.Context, meals []domain.MealRecord) domain.PatternSummaryResponse {
	features := Extract(meals)
	return domain.PatternSummaryResponse{
		Success:  true,
		Summary:  s.narrativeService.SummarizePattern(ctx, meals, features),
		Patterns: features,
	}
}
