package domain

import (
	"errors"
)

var (
	MessageSuccessGetSuggestions  = "suggestions generated successfully"
	MessageSuccessCalculateGoals  = "nutrition goals calculated successfully"
	MessageFailedGetSuggestions   = "failed to generate suggestions"
	MessageFailedCalculateGoals   = "failed to calculate nutrition goals"
	MessageInvalidFoodItems       = "invalid food items provided"
	MessageFallbackSuggestion     = "Unable to generate suggestions at this time"
	MessageFallbackNextMealAdvice = "Try to include a variety of nutrients in your next meal"

	ErrInvalidObservation = errors.New("invalid food observation")
	ErrInvalidFoodItems   = errors.New("food items must be an array")
)

type PortionSize string

const (
	PortionSmall  PortionSize = "small"
	PortionMedium PortionSize = "medium"
	PortionLarge  PortionSize = "large"
)

type MacroGuess string

const (
	MacroCarbHeavy   MacroGuess = "carb-heavy"
	MacroProteinRich MacroGuess = "protein-rich"
	MacroFatHeavy    MacroGuess = "fat-heavy"
	MacroBalanced    MacroGuess = "balanced"
)

type GoalType string

const (
	GoalWeightLoss  GoalType = "weight_loss"
	GoalMuscleGain  GoalType = "muscle_gain"
	GoalMaintenance GoalType = "maintenance"
)

type (
	// MacroProfile is the per-serving macro set shared by observations, reference
	// records and enriched items.
	MacroProfile struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Fiber    float64 `json:"fiber"`
	}

	// FoodObservation is one food as guessed by the vision model, after boundary normalization.
	FoodObservation struct {
		Name string `json:"name"`
		MacroProfile
		Confidence    float64     `json:"confidence"`
		ServingSize   string      `json:"servingSize"`
		CookingMethod string      `json:"cookingMethod"`
		HealthNotes   string      `json:"healthNotes"`
		Ingredients   []string    `json:"ingredients"`
		PortionSize   PortionSize `json:"portionSize"`
		MacroGuess    MacroGuess  `json:"macroGuess"`
	}

	EnrichedFoodItem struct {
		ID string `json:"id"`
		FoodObservation
		Verified    bool `json:"verified"`
		HealthScore int  `json:"healthScore"`
	}

	NutritionTotals struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Fiber    float64 `json:"fiber"`
	}

	UserGoals struct {
		Goal          GoalType `json:"goal" query:"goal" validate:"omitempty,oneof=weight_loss muscle_gain maintenance"`
		DailyCalories float64  `json:"dailyCalories" query:"daily_calories" validate:"gte=0"`
		ProteinGoal   float64  `json:"proteinGoal" query:"protein_goal" validate:"gte=0"`
		CarbGoal      float64  `json:"carbGoal" query:"carb_goal" validate:"gte=0"`
		FatGoal       float64  `json:"fatGoal" query:"fat_goal" validate:"gte=0"`
	}

	GoalProgress struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}

	GoalsMet struct {
		Calories    bool `json:"calories"`
		Protein     bool `json:"protein"`
		HealthScore bool `json:"healthScore"`
	}

	MealBreakdown struct {
		MealType           string  `json:"mealType"`
		Calories           float64 `json:"calories"`
		ItemCount          int     `json:"itemCount"`
		AverageHealthScore float64 `json:"averageHealthScore"`
	}

	DailyProgress struct {
		Totals             NutritionTotals `json:"totals"`
		Progress           GoalProgress    `json:"progress"`
		GoalsMet           GoalsMet        `json:"goalsMet"`
		AverageHealthScore float64         `json:"averageHealthScore"`
		ItemCount          int             `json:"itemCount"`
	}

	// SuggestionFoodItem is the loose shape the client posts to the suggestions endpoint.
	SuggestionFoodItem struct {
		Name     string    `json:"name"`
		Calories FlexFloat `json:"calories"`
		Protein  FlexFloat `json:"protein"`
		Carbs    FlexFloat `json:"carbs"`
		Fat      FlexFloat `json:"fat"`
		Fiber    FlexFloat `json:"fiber"`
	}

	NutritionSuggestionsRequest struct {
		FoodItems []SuggestionFoodItem `json:"foodItems"`
		UserGoals UserGoals            `json:"userGoals"`
	}

	NutritionSuggestions struct {
		Suggestions    []string `json:"suggestions"`
		MealScore      int      `json:"mealScore"`
		NextMealAdvice string   `json:"nextMealAdvice"`
	}

	UserProfileRequest struct {
		Age               int      `json:"age" validate:"required,min=1,max=130"`
		Gender            string   `json:"gender" validate:"required,oneof=male female other"`
		HeightCM          float64  `json:"height_cm" validate:"required,gt=0"`
		WeightKG          float64  `json:"weight_kg" validate:"required,gt=0"`
		ActivityLevel     string   `json:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
		CustomCalorieGoal float64  `json:"custom_calorie_goal" validate:"gte=0"`
		Goal              GoalType `json:"goal" validate:"omitempty,oneof=weight_loss muscle_gain maintenance"`
	}

	UserGoalsResponse struct {
		BasalMetabolicRate       float64   `json:"basal_metabolic_rate"`
		RecommendedDailyCalories float64   `json:"recommended_daily_calories"`
		Goals                    UserGoals `json:"goals"`
	}
)
