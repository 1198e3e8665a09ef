package nutrition

import (
	"FoodTracker-Backend/domain"
	"strings"
)

const (
	neutralHealthScore = 5
	minHealthScore     = 1
	maxHealthScore     = 10
)

// HealthScore rates a food from 1 to 10 from its macro profile. Unidentified foods and
// zero-calorie profiles get the neutral score.
func HealthScore(name string, p domain.MacroProfile) int {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "unidentified") || strings.Contains(lower, "unknown") || p.Calories == 0 {
		return neutralHealthScore
	}

	score := neutralHealthScore

	if p.Protein > 20 {
		score += 2
	} else if p.Protein > 10 {
		score++
	}

	if p.Fiber > 5 {
		score += 2
	} else if p.Fiber > 2 {
		score++
	}

	if p.Fat > 20 {
		score -= 2
	} else if p.Fat > 10 {
		score--
	}

	if p.Calories > 500 {
		score -= 2
	} else if p.Calories > 300 {
		score--
	}

	return clampInt(score, minHealthScore, maxHealthScore)
}

// HealthScoreDescription maps an average health score to its display band.
func HealthScoreDescription(score float64) string {
	switch {
	case score >= 8:
		return "Excellent! You're making great food choices."
	case score >= 6:
		return "Good job! A few tweaks could make it even better."
	case score >= 4:
		return "Room for improvement. Focus on healthier options."
	default:
		return "Let's work on making better food choices."
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
