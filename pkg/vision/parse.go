package vision

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/pkg/gemini"
	"FoodTracker-Backend/pkg/pattern"
	"encoding/json"
	"strings"
)

const (
	defaultConfidence       = 0.5
	defaultImageDescription = "Food image"
	unknownFoodName         = "Unknown Food"
	fallbackServingSize     = "Unknown"
	fallbackCookingMethod   = "Unknown"
	fallbackHealthNotes     = "Unable to identify food item"
)

type rawFood struct {
	Name       string            `json:"name"`
	Calories   domain.FlexFloat  `json:"calories"`
	Protein    domain.FlexFloat  `json:"protein"`
	Carbs      domain.FlexFloat  `json:"carbs"`
	Fat        domain.FlexFloat  `json:"fat"`
	Fiber      domain.FlexFloat  `json:"fiber"`
	Confidence *domain.FlexFloat `json:"confidence"`

	ServingSizeSnake   string `json:"serving_size"`
	ServingSizeCamel   string `json:"servingSize"`
	CookingMethodSnake string `json:"cooking_method"`
	CookingMethodCamel string `json:"cookingMethod"`
	HealthNotesSnake   string `json:"health_notes"`
	HealthNotesCamel   string `json:"healthNotes"`

	Ingredients         []string `json:"ingredients"`
	DetectedIngredients []string `json:"detected_ingredients"`

	PortionSizeSnake    string `json:"portion_size"`
	PortionSizeCamel    string `json:"portionSize"`
	PortionSizeEstimate string `json:"portion_size_estimate"`

	MacroGuessSnake         string `json:"macro_guess"`
	MacroGuessCamel         string `json:"macroGuess"`
	MacroAppearanceEstimate string `json:"macro_appearance_estimate"`
}

type rawAnalysis struct {
	Foods                  []rawFood         `json:"foods"`
	OverallConfidenceSnake *domain.FlexFloat `json:"overall_confidence"`
	OverallConfidenceCamel *domain.FlexFloat `json:"overallConfidence"`
	ImageDescriptionSnake  string            `json:"image_description"`
	ImageDescriptionCamel  string            `json:"imageDescription"`
	Suggestions            []string          `json:"suggestions"`
}

// ParseAnalysis turns raw model output into a normalized VisionAnalysis. Output that has
// no JSON object, does not decode, or lacks a foods array yields the fallback analysis.
func ParseAnalysis(text string) domain.VisionAnalysis {
	jsonStr, ok := gemini.ExtractJSONObject(text)
	if !ok {
		return FallbackAnalysis()
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return FallbackAnalysis()
	}
	if raw.Foods == nil {
		return FallbackAnalysis()
	}

	analysis := domain.VisionAnalysis{
		Foods:             make([]domain.FoodObservation, 0, len(raw.Foods)),
		OverallConfidence: defaultConfidence,
		ImageDescription:  firstNonEmpty(raw.ImageDescriptionSnake, raw.ImageDescriptionCamel, defaultImageDescription),
		Suggestions:       nonNil(raw.Suggestions),
	}
	if raw.OverallConfidenceSnake != nil {
		analysis.OverallConfidence = raw.OverallConfidenceSnake.Float64()
	} else if raw.OverallConfidenceCamel != nil {
		analysis.OverallConfidence = raw.OverallConfidenceCamel.Float64()
	}

	for _, f := range raw.Foods {
		analysis.Foods = append(analysis.Foods, normalizeFood(f))
	}

	return analysis
}

func normalizeFood(f rawFood) domain.FoodObservation {
	confidence := defaultConfidence
	if f.Confidence != nil {
		confidence = f.Confidence.Float64()
	}

	ingredients := f.Ingredients
	if len(ingredients) == 0 {
		ingredients = f.DetectedIngredients
	}

	obs := domain.FoodObservation{
		Name:          firstNonEmpty(f.Name, unknownFoodName),
		Confidence:    confidence,
		ServingSize:   firstNonEmpty(f.ServingSizeSnake, f.ServingSizeCamel),
		CookingMethod: firstNonEmpty(f.CookingMethodSnake, f.CookingMethodCamel),
		HealthNotes:   firstNonEmpty(f.HealthNotesSnake, f.HealthNotesCamel),
		Ingredients:   nonNil(ingredients),
		PortionSize:   normalizePortion(firstNonEmpty(f.PortionSizeSnake, f.PortionSizeCamel, f.PortionSizeEstimate)),
		MacroGuess:    pattern.ClassifyMacro(firstNonEmpty(f.MacroGuessSnake, f.MacroGuessCamel, f.MacroAppearanceEstimate)),
	}
	obs.Calories = f.Calories.Float64()
	obs.Protein = f.Protein.Float64()
	obs.Carbs = f.Carbs.Float64()
	obs.Fat = f.Fat.Float64()
	obs.Fiber = f.Fiber.Float64()

	return obs
}

// FallbackAnalysis is returned whenever the model output cannot be used.
func FallbackAnalysis() domain.VisionAnalysis {
	return domain.VisionAnalysis{
		Foods: []domain.FoodObservation{
			{
				Name:          domain.FallbackFoodName,
				Confidence:    domain.FallbackConfidence,
				ServingSize:   fallbackServingSize,
				CookingMethod: fallbackCookingMethod,
				HealthNotes:   fallbackHealthNotes,
				Ingredients:   []string{},
				PortionSize:   domain.PortionMedium,
				MacroGuess:    domain.MacroBalanced,
			},
		},
		OverallConfidence: domain.FallbackConfidence,
		ImageDescription:  domain.FallbackImageDescription,
		Suggestions:       []string{domain.FallbackPhotoSuggestion},
		Fallback:          true,
	}
}

func normalizePortion(s string) domain.PortionSize {
	switch p := domain.PortionSize(strings.ToLower(s)); p {
	case domain.PortionSmall, domain.PortionMedium, domain.PortionLarge:
		return p
	default:
		return domain.PortionMedium
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
