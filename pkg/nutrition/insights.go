package nutrition

import (
	"FoodTracker-Backend/domain"
)

const DefaultEncouragement = "Keep up the great work!"

// HealthInsights applies the per-meal threshold rules in order. Each rule adds at most one
// message; when nothing fires a single encouragement is returned.
func HealthInsights(totals domain.NutritionTotals) []string {
	return orDefault(generalRules(totals))
}

// GoalSuggestions applies the goal-specific rules ahead of the general ones.
func GoalSuggestions(totals domain.NutritionTotals, goals domain.UserGoals) []string {
	var out []string

	switch goals.Goal {
	case domain.GoalWeightLoss:
		if totals.Calories > goals.DailyCalories*0.4 {
			out = append(out, "This meal is high in calories for weight loss. Consider smaller portions.")
		}
		if totals.Fiber < 10 {
			out = append(out, "Add more fiber-rich foods to help with satiety and weight loss.")
		}
	case domain.GoalMuscleGain:
		if totals.Protein < 30 {
			out = append(out, "Add more protein to support muscle growth.")
		}
		if totals.Calories < 500 {
			out = append(out, "Consider adding more calories for muscle building.")
		}
	}

	return orDefault(append(out, generalRules(totals)...))
}

func generalRules(totals domain.NutritionTotals) []string {
	var out []string

	if totals.Protein < 20 {
		out = append(out, "Consider adding more protein to this meal")
	} else if totals.Protein > 50 {
		out = append(out, "High protein meal - great for muscle building!")
	}

	if totals.Fiber < 5 {
		out = append(out, "Add more fiber-rich foods like vegetables or whole grains")
	}

	if totals.Fat < 10 {
		out = append(out, "Consider adding healthy fats like avocado or nuts")
	} else if totals.Fat > 40 {
		out = append(out, "This meal is high in fat - consider lighter options")
	}

	if totals.Calories < 200 {
		out = append(out, "This might be a light meal - consider adding more food")
	} else if totals.Calories > 800 {
		out = append(out, "High calorie meal - consider portion control")
	}

	return out
}

// NextMealAdvice picks one piece of advice for the next meal from the current totals.
func NextMealAdvice(totals domain.NutritionTotals) string {
	switch {
	case totals.Protein < 20:
		return "Your next meal should focus on protein-rich foods like chicken, fish, or legumes."
	case totals.Fiber < 5:
		return "Add more vegetables and whole grains to your next meal for better fiber intake."
	case totals.Calories < 300:
		return "Consider a more substantial meal next time to meet your daily calorie needs."
	default:
		return "Great meal! Continue with balanced nutrition in your next meal."
	}
}

// DailySuggestions turns a day's progress into improvement tips.
func DailySuggestions(p domain.DailyProgress, goals domain.UserGoals, breakdown []domain.MealBreakdown) []string {
	var out []string

	if goals.DailyCalories > 0 {
		if p.Totals.Calories < goals.DailyCalories*0.8 {
			out = append(out, "Consider adding healthy snacks to meet your calorie goals")
		} else if p.Totals.Calories > goals.DailyCalories*1.2 {
			out = append(out, "Try reducing portion sizes or choosing lower-calorie options")
		}
	}

	if goals.ProteinGoal > 0 && p.Totals.Protein < goals.ProteinGoal*0.7 {
		out = append(out, "Add more lean proteins like chicken, fish, or legumes")
	}

	if p.ItemCount > 0 && p.AverageHealthScore < 6 {
		out = append(out,
			"Include more fruits and vegetables in your meals",
			"Choose whole grains over refined carbohydrates",
			"Limit processed foods and added sugars",
		)
	}

	empty := make(map[string]bool, len(breakdown))
	for _, b := range breakdown {
		empty[b.MealType] = b.ItemCount == 0
	}
	if empty["breakfast"] {
		out = append(out, "Don't skip breakfast - it kickstarts your metabolism")
	}
	if empty["lunch"] {
		out = append(out, "A balanced lunch helps maintain energy throughout the day")
	}
	if empty["dinner"] {
		out = append(out, "A nutritious dinner supports overnight recovery")
	}

	out = append(out, "Remember to stay hydrated throughout the day")

	return orDefault(out)
}

func orDefault(messages []string) []string {
	if len(messages) == 0 {
		return []string{DefaultEncouragement}
	}
	return messages
}
