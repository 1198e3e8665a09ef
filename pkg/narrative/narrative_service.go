package narrative

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/pkg/gemini"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

const patternPromptTemplate = `You are generating a daily eating pattern summary for a food-tracking app.

The summary must be 100%% descriptive and must NOT give advice, evaluations, nutrition judgments, recommendations, or health conclusions.

- No statements about what the user should eat.
- No statements about healthiness, diet quality, risks, or medical impact.
- No nutritional judgments (e.g., "too much sugar," "high-fat meal," "unhealthy," "better choices").
- Only objective observations, patterns, frequencies, and comparisons.

INPUT YOU WILL RECEIVE:

Meals for today:
%s

Extracted patterns:
%s

TASK:

Using ONLY the provided data, produce:

1. A concise 3-6 bullet "Today's Eating Pattern Summary" that highlights interesting observational patterns from the day.

2. A single short sentence that summarizes the day's meals in a friendly but still fully descriptive tone.

RULES:

- Do NOT use any evaluative words like "healthy," "unhealthy," "balanced," "better," "worse," "should," "avoid," or anything implying advice.
- ONLY describe what can be directly inferred from the input data.
- If data is incomplete or minimal, still produce a short summary based on what is available.
- Stay neutral, factual, and helpful.

FORMAT:

Return exactly this JSON structure:
{
  "summary": "Today's Eating Pattern",
  "bullets": [
    "bullet 1",
    "bullet 2",
    "bullet 3"
  ],
  "overall": "1 short sentence summary"
}`

type (
	// NarrativeService turns structural pattern features into display text. It never fails;
	// callers always receive a renderable summary.
	NarrativeService interface {
		SummarizePattern(ctx context.Context, meals []domain.MealRecord, features domain.PatternFeatures) domain.PatternSummary
	}

	narrativeService struct {
		client gemini.Client
	}
)

func NewNarrativeService(client gemini.Client) NarrativeService {
	return &narrativeService{client: client}
}

func (s *narrativeService) SummarizePattern(ctx context.Context, meals []domain.MealRecord, features domain.PatternFeatures) domain.PatternSummary {
	prompt, err := buildPrompt(meals, features)
	if err != nil {
		log.Errorf("narrative: build prompt: %v", err)
		return UnavailableSummary()
	}

	text, err := s.client.GenerateContent(ctx, gemini.GenerateRequest{
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		log.Errorf("narrative: generate pattern summary: %v", err)
		return UnavailableSummary()
	}

	summary, ok := ParseSummary(text)
	if !ok {
		log.Warnf("narrative: could not parse pattern summary response")
		return EmptySummary()
	}
	return summary
}

func buildPrompt(meals []domain.MealRecord, features domain.PatternFeatures) (string, error) {
	if meals == nil {
		meals = []domain.MealRecord{}
	}
	mealsJSON, err := json.MarshalIndent(meals, "", "  ")
	if err != nil {
		return "", err
	}
	featuresJSON, err := json.MarshalIndent(features, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(patternPromptTemplate, mealsJSON, featuresJSON), nil
}
