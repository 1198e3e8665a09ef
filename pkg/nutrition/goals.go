package nutrition

import (
	"FoodTracker-Backend/domain"
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BasalMetabolicRate uses the Mifflin-St Jeor equation. "other" averages the male and
// female constants.
func BasalMetabolicRate(p domain.UserProfileRequest) float64 {
	base := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	switch p.Gender {
	case "male":
		return base + 5
	case "female":
		return base - 161
	default:
		return base + (5-161)/2.0
	}
}

// GoalsFromProfile derives daily targets: 30% of calories from protein, 40% from carbs
// and 30% from fat.
func GoalsFromProfile(p domain.UserProfileRequest) domain.UserGoalsResponse {
	bmr := BasalMetabolicRate(p)

	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers["moderate"]
	}
	recommended := bmr * multiplier

	calories := recommended
	if p.CustomCalorieGoal > 0 {
		calories = p.CustomCalorieGoal
	}

	goal := p.Goal
	if goal == "" {
		goal = domain.GoalMaintenance
	}

	return domain.UserGoalsResponse{
		BasalMetabolicRate:       bmr,
		RecommendedDailyCalories: recommended,
		Goals: domain.UserGoals{
			Goal:          goal,
			DailyCalories: calories,
			ProteinGoal:   calories * 0.3 / 4,
			CarbGoal:      calories * 0.4 / 4,
			FatGoal:       calories * 0.3 / 9,
		},
	}
}
