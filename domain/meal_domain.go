package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogMeal         = "meal logged successfully"
	MessageSuccessGetMeals        = "meals retrieved successfully"
	MessageSuccessDeleteMeal      = "meal deleted successfully"
	MessageSuccessGetDailySummary = "daily summary retrieved successfully"
	MessageSuccessIssueToken      = "device token issued successfully"
	MessageSuccessGetPatterns     = "eating patterns retrieved successfully"

	MessageFailedLogMeal         = "failed to log meal"
	MessageFailedGetMeals        = "failed to retrieve meals"
	MessageFailedDeleteMeal      = "failed to delete meal"
	MessageFailedGetDailySummary = "failed to retrieve daily summary"
	MessageFailedIssueToken      = "failed to issue device token"
	MessageFailedGetPatterns     = "failed to retrieve eating patterns"

	ErrMealNotFound       = errors.New("meal not found")
	ErrUnauthorizedAccess = errors.New("unauthorized access to meal")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrInvalidTimestamp   = errors.New("invalid meal timestamp")
)

type (
	LogMealRequest struct {
		Name        string   `json:"name" validate:"required,max=200"`
		Timestamp   string   `json:"timestamp" validate:"omitempty"`
		MealType    string   `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
		Location    string   `json:"location" validate:"omitempty,max=100"`
		Cuisine     string   `json:"cuisine" validate:"omitempty,max=100"`
		PortionSize string   `json:"portion_size" validate:"omitempty,oneof=small medium large"`
		MacroGuess  string   `json:"macro_guess" validate:"omitempty,max=50"`
		Ingredients []string `json:"ingredients" validate:"omitempty,dive,max=100"`
		Calories    float64  `json:"calories" validate:"gte=0"`
		Protein     float64  `json:"protein" validate:"gte=0"`
		Carbs       float64  `json:"carbs" validate:"gte=0"`
		Fat         float64  `json:"fat" validate:"gte=0"`
		Fiber       float64  `json:"fiber" validate:"gte=0"`
		Verified    bool     `json:"verified"`
		AnalysisID  string   `json:"analysis_id" validate:"omitempty,uuid"`
	}

	MealResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Timestamp   time.Time `json:"timestamp"`
		MealType    string    `json:"meal_type"`
		Location    string    `json:"location"`
		Cuisine     string    `json:"cuisine,omitempty"`
		PortionSize string    `json:"portion_size"`
		MacroGuess  string    `json:"macro_guess"`
		Ingredients []string  `json:"ingredients"`
		Calories    float64   `json:"calories"`
		Protein     float64   `json:"protein"`
		Carbs       float64   `json:"carbs"`
		Fat         float64   `json:"fat"`
		Fiber       float64   `json:"fiber"`
		HealthScore int       `json:"health_score"`
		Verified    bool      `json:"verified"`
		AnalysisID  string    `json:"analysis_id,omitempty"`
	}

	DayQuery struct {
		Date     string `query:"date" validate:"omitempty,datetime=2006-01-02"`
		Timezone string `query:"tz" validate:"omitempty,max=64"`
	}

	DailySummaryQuery struct {
		Date          string   `query:"date" validate:"omitempty,datetime=2006-01-02"`
		Timezone      string   `query:"tz" validate:"omitempty,max=64"`
		Goal          GoalType `query:"goal" validate:"omitempty,oneof=weight_loss muscle_gain maintenance"`
		DailyCalories float64  `query:"daily_calories" validate:"gte=0"`
		ProteinGoal   float64  `query:"protein_goal" validate:"gte=0"`
		CarbGoal      float64  `query:"carb_goal" validate:"gte=0"`
		FatGoal       float64  `query:"fat_goal" validate:"gte=0"`
	}

	DailySummaryResponse struct {
		Date                   string          `json:"date"`
		Progress               DailyProgress   `json:"progress"`
		MealBreakdown          []MealBreakdown `json:"meal_breakdown"`
		HealthScoreDescription string          `json:"health_score_description"`
		Suggestions            []string        `json:"suggestions"`
	}

	DeviceTokenResponse struct {
		DeviceID string `json:"device_id"`
		Token    string `json:"token"`
	}
)

func (q DailySummaryQuery) Day() DayQuery {
	return DayQuery{Date: q.Date, Timezone: q.Timezone}
}

func (q DailySummaryQuery) Goals() UserGoals {
	return UserGoals{
		Goal:          q.Goal,
		DailyCalories: q.DailyCalories,
		ProteinGoal:   q.ProteinGoal,
		CarbGoal:      q.CarbGoal,
		FatGoal:       q.FatGoal,
	}
}
