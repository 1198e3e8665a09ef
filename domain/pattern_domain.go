package domain

import (
	"time"
)

var (
	MessageSuccessPatternSummary = "pattern summary generated successfully"
	MessageFailedPatternSummary  = "failed to generate pattern summary"
)

const (
	DefaultMealType    = "snack"
	DefaultLocation    = "home"
	DefaultPortionSize = string(PortionMedium)
	DefaultMacroGuess  = string(MacroBalanced)
	PatternSummaryName = "Today's Eating Pattern"
)

type (
	// RawMealRecord accepts both the camelCase fields sent by the iOS client and the
	// snake_case fields used by the vision model.
	RawMealRecord struct {
		Name                    string    `json:"name"`
		Timestamp               FlexTime  `json:"timestamp"`
		Ingredients             []string  `json:"ingredients"`
		DetectedIngredients     []string  `json:"detected_ingredients"`
		Cuisine                 string    `json:"cuisine"`
		CuisineGuess            string    `json:"cuisine_guess"`
		PortionSize             string    `json:"portionSize"`
		PortionSizeEstimate     string    `json:"portion_size_estimate"`
		MealType                string    `json:"mealType"`
		MealTypeGuess           string    `json:"meal_type_guess"`
		Location                string    `json:"location"`
		MacroGuess              string    `json:"macroGuess"`
		MacroAppearanceEstimate string    `json:"macro_appearance_estimate"`
		Calories                FlexFloat `json:"calories"`
		Carbs                   FlexFloat `json:"carbs"`
		Protein                 FlexFloat `json:"protein"`
		Fat                     FlexFloat `json:"fat"`
	}

	// MealRecord is one eaten meal in the canonical shape used by pattern extraction.
	MealRecord struct {
		Timestamp   time.Time `json:"timestamp"`
		Ingredients []string  `json:"detected_ingredients"`
		Cuisine     string    `json:"cuisine_guess,omitempty"`
		PortionSize string    `json:"portion_size_estimate"`
		MealType    string    `json:"meal_type_guess"`
		Location    string    `json:"location"`
		MacroGuess  string    `json:"macro_appearance_estimate"`
		Calories    float64   `json:"calories"`
		Carbs       float64   `json:"carbs"`
		Protein     float64   `json:"protein"`
		Fat         float64   `json:"fat"`
	}

	LargestPortion struct {
		MealType    string  `json:"meal_type"`
		Calories    float64 `json:"calories"`
		PortionSize string  `json:"portion_size"`
	}

	MacroDistribution struct {
		CarbHeavy   int `json:"carb_heavy"`
		ProteinRich int `json:"protein_rich"`
		FatHeavy    int `json:"fat_heavy"`
		Balanced    int `json:"balanced"`
	}

	PatternFeatures struct {
		FirstMealTime        *time.Time        `json:"first_meal_time"`
		LastMealTime         *time.Time        `json:"latest_meal_time"`
		LargestPortion       *LargestPortion   `json:"largest_portion"`
		IngredientFrequency  map[string]int    `json:"ingredient_frequency"`
		MacroDistribution    MacroDistribution `json:"macro_distribution"`
		MealTypeDistribution map[string]int    `json:"meal_type_distribution"`
		LocationDistribution map[string]int    `json:"location_distribution"`
	}

	PatternSummary struct {
		Summary string   `json:"summary"`
		Bullets []string `json:"bullets"`
		Overall string   `json:"overall"`
	}

	PatternSummaryRequest struct {
		Meals []RawMealRecord `json:"meals"`
	}

	PatternSummaryResponse struct {
		Success  bool            `json:"success"`
		Summary  PatternSummary  `json:"summary"`
		Patterns PatternFeatures `json:"patterns"`
	}
)
