package narrative

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/pkg/gemini"
	"encoding/json"
)

// ParseSummary reads the {summary, bullets, overall} object out of model output. The
// text fields are passed through untouched; only a missing title is filled in.
func ParseSummary(text string) (domain.PatternSummary, bool) {
	jsonStr, ok := gemini.ExtractJSONObject(text)
	if !ok {
		return domain.PatternSummary{}, false
	}

	var summary domain.PatternSummary
	if err := json.Unmarshal([]byte(jsonStr), &summary); err != nil {
		return domain.PatternSummary{}, false
	}

	if summary.Summary == "" {
		summary.Summary = domain.PatternSummaryName
	}
	if summary.Bullets == nil {
		summary.Bullets = []string{}
	}
	return summary, true
}

// EmptySummary is used when the model answered but the answer could not be read.
func EmptySummary() domain.PatternSummary {
	return domain.PatternSummary{
		Summary: domain.PatternSummaryName,
		Bullets: []string{
			"No patterns detected yet",
			"Continue logging meals to see insights",
		},
		Overall: "Start tracking your meals to see eating patterns emerge.",
	}
}

// UnavailableSummary is used when the model could not be reached.
func UnavailableSummary() domain.PatternSummary {
	return domain.PatternSummary{
		Summary: domain.PatternSummaryName,
		Bullets: []string{
			"Unable to generate pattern summary",
			"Please try again later",
		},
		Overall: "Pattern analysis is currently unavailable.",
	}
}
