package vision

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/pkg/gemini"
	"context"

	"github.com/gofiber/fiber/v2/log"
)

const foodAnalysisPrompt = `Analyze this food image and provide detailed nutrition information.

Please identify:
1. All food items visible in the image
2. Estimated portion sizes
3. Cooking methods (grilled, fried, raw, etc.)
4. Nutritional content for each item

For each food item, provide:
- name: Clear, SPECIFIC food name with details (e.g., "red apple" not just "apple", "grilled chicken breast" not just "chicken"). Include color, preparation method, or other distinguishing features when visible.
- calories: Estimated calories per serving
- protein: Protein in grams
- carbs: Carbohydrates in grams
- fat: Fat in grams
- fiber: Fiber in grams (if applicable)
- serving_size: Estimated serving size description
- confidence: Your confidence level (0-1)
- cooking_method: How the food appears to be prepared
- health_notes: Any health considerations or tips
- ingredients: Array of main ingredients detected (e.g., ["chicken", "rice", "broccoli"])
- portion_size: "small", "medium", or "large" based on visual appearance
- macro_guess: "carb-heavy", "protein-rich", "fat-heavy", or "balanced" based on visual characteristics

Return ONLY a JSON object with this structure:
{
  "foods": [
    {
      "name": "string",
      "calories": number,
      "protein": number,
      "carbs": number,
      "fat": number,
      "fiber": number,
      "serving_size": "string",
      "confidence": number,
      "cooking_method": "string",
      "health_notes": "string",
      "ingredients": ["string"],
      "portion_size": "small" | "medium" | "large",
      "macro_guess": "carb-heavy" | "protein-rich" | "fat-heavy" | "balanced"
    }
  ],
  "overall_confidence": number,
  "image_description": "string",
  "suggestions": ["string"]
}

Be as accurate as possible with nutrition estimates. Consider the visual portion size and cooking method.`

type (
	VisionService interface {
		AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (domain.VisionAnalysis, error)
	}

	visionService struct {
		client gemini.Client
	}
)

func NewVisionService(client gemini.Client) VisionService {
	return &visionService{client: client}
}

// AnalyzeFoodImage asks the vision model about the photo. Transport failures are returned
// as errors; unusable model output is not an error and yields the fallback analysis.
func (s *visionService) AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (domain.VisionAnalysis, error) {
	text, err := s.client.GenerateContent(ctx, gemini.GenerateRequest{
		Prompt:      foodAnalysisPrompt,
		Image:       image,
		MimeType:    mimeType,
		Temperature: 0.3,
		MaxTokens:   1500,
	})
	if err != nil {
		return domain.VisionAnalysis{}, err
	}

	analysis := ParseAnalysis(text)
	if analysis.Fallback {
		log.Warnf("vision: unusable model output (%d bytes), using fallback analysis", len(text))
	}
	return analysis, nil
}
