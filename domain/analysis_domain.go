package domain

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAnalyzeFood = "food image analyzed successfully"
	MessageNoImage            = "no image provided"
	MessageInvalidFileType    = "invalid file type"
	MessageFileTooLarge       = "file too large"
	MessageFailedAnalyzeFood  = "failed to analyze food image"
	MessageSuccessGetAnalysis = "food analysis retrieved successfully"
	MessageFailedGetAnalysis  = "failed to retrieve food analysis"

	ErrNoImage                = errors.New("no image provided")
	ErrInvalidImageFormat     = errors.New("invalid image format")
	ErrImageTooLarge          = errors.New("image exceeds the maximum upload size")
	ErrGeminiNotConfigured    = errors.New("gemini API key or model not configured")
	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
	ErrGeminiUnauthorized     = errors.New("invalid gemini API key")
	ErrGeminiRateLimited      = errors.New("gemini API rate limit exceeded")
	ErrGeminiBadRequest       = errors.New("invalid request to gemini API")
	ErrAnalysisNotFound       = errors.New("food analysis not found")
)

const (
	FallbackFoodName         = "Unidentified Food"
	FallbackConfidence       = 0.1
	FallbackImageDescription = "Unable to analyze image"
	FallbackPhotoSuggestion  = "Try taking a clearer photo with better lighting"
)

type (
	AnalyzeFoodRequest struct {
		Image *multipart.FileHeader `form:"image" validate:"required"`
	}

	// VisionAnalysis is the normalized form of the vision model's response.
	VisionAnalysis struct {
		Foods             []FoodObservation `json:"foods"`
		OverallConfidence float64           `json:"overallConfidence"`
		ImageDescription  string            `json:"imageDescription"`
		Suggestions       []string          `json:"suggestions"`
		Fallback          bool              `json:"-"`
	}

	// FoodAnalysis is written with a single foods array: the enriched items when Enriched,
	// otherwise the observations exactly as the model produced them.
	FoodAnalysis struct {
		Foods             []EnrichedFoodItem `json:"-"`
		Observations      []FoodObservation  `json:"-"`
		Enriched          bool               `json:"enriched"`
		OverallConfidence float64            `json:"overallConfidence"`
		ImageDescription  string             `json:"imageDescription"`
		Suggestions       []string           `json:"suggestions"`
		Totals            *NutritionTotals   `json:"totals,omitempty"`
		Insights          []string           `json:"insights,omitempty"`
		ImageURL          string             `json:"imageUrl,omitempty"`
		Timestamp         time.Time          `json:"timestamp"`
	}

	AnalyzeFoodResponse struct {
		Success    bool         `json:"success"`
		AnalysisID string       `json:"analysisId"`
		Timestamp  time.Time    `json:"timestamp"`
		Analysis   FoodAnalysis `json:"analysis"`
	}
)

func (a FoodAnalysis) MarshalJSON() ([]byte, error) {
	type alias FoodAnalysis

	var foods any = a.Foods
	switch {
	case !a.Enriched && a.Observations != nil:
		foods = a.Observations
	case !a.Enriched:
		foods = []FoodObservation{}
	case a.Foods == nil:
		foods = []EnrichedFoodItem{}
	}

	return json.Marshal(struct {
		Foods any `json:"foods"`
		alias
	}{Foods: foods, alias: alias(a)})
}

func (a *FoodAnalysis) UnmarshalJSON(data []byte) error {
	type alias FoodAnalysis

	aux := struct {
		Foods json.RawMessage `json:"foods"`
		*alias
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Foods) == 0 || string(aux.Foods) == "null" {
		return nil
	}
	if a.Enriched {
		return json.Unmarshal(aux.Foods, &a.Foods)
	}
	return json.Unmarshal(aux.Foods, &a.Observations)
}
