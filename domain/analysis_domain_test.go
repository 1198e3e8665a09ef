package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodAnalysisJSON_Enriched(t *testing.T) {
	item := EnrichedFoodItem{ID: "id-1", Verified: true, HealthScore: 7}
	item.Name = "salmon"
	item.Calories = 229
	item.Ingredients = []string{"salmon"}

	in := FoodAnalysis{
		Foods:       []EnrichedFoodItem{item},
		Enriched:    true,
		Suggestions: []string{},
		Totals:      &NutritionTotals{Calories: 229},
		Timestamp:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"foods":[{"id":"id-1"`)
	assert.NotContains(t, string(raw), "observations")

	var out FoodAnalysis
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestFoodAnalysisJSON_Unenriched(t *testing.T) {
	obs := FoodObservation{Name: "mystery", Confidence: 0.4, Ingredients: []string{}}
	obs.Calories = -10

	in := FoodAnalysis{
		Observations: []FoodObservation{obs},
		Suggestions:  []string{},
		Timestamp:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.JSONEq(t, `false`, string(body["enriched"]))
	assert.NotContains(t, string(body["foods"]), `"id"`)

	var out FoodAnalysis
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestFoodAnalysisJSON_EmptyFoods(t *testing.T) {
	for name, in := range map[string]FoodAnalysis{
		"enriched":   {Enriched: true},
		"unenriched": {},
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := json.Marshal(in)
			require.NoError(t, err)

			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.JSONEq(t, `[]`, string(body["foods"]))
		})
	}
}
