package pattern

import (
	"FoodTracker-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
}

func TestExtract_Empty(t *testing.T) {
	features := Extract(nil)

	assert.Nil(t, features.FirstMealTime)
	assert.Nil(t, features.LastMealTime)
	assert.Nil(t, features.LargestPortion)
	assert.Empty(t, features.IngredientFrequency)
	assert.NotNil(t, features.IngredientFrequency)
	assert.Equal(t, domain.MacroDistribution{}, features.MacroDistribution)
	assert.NotNil(t, features.MealTypeDistribution)
	assert.NotNil(t, features.LocationDistribution)
}

func TestExtract(t *testing.T) {
	meals := []domain.MealRecord{
		{Timestamp: at(12, 30), Ingredients: []string{"rice", "chicken"}, MealType: "lunch", Location: "office", MacroGuess: "carb-heavy", Calories: 100, PortionSize: "small"},
		{Timestamp: at(19, 0), Ingredients: []string{"chicken", "broccoli"}, MealType: "dinner", Location: "home", MacroGuess: "protein-rich", Calories: 500, PortionSize: "large"},
		{Timestamp: at(8, 15), Ingredients: []string{"oats"}, MealType: "breakfast", Location: "", MacroGuess: "", Calories: 250},
	}

	features := Extract(meals)

	require.NotNil(t, features.FirstMealTime)
	require.NotNil(t, features.LastMealTime)
	assert.Equal(t, at(8, 15), *features.FirstMealTime)
	assert.Equal(t, at(19, 0), *features.LastMealTime)

	require.NotNil(t, features.LargestPortion)
	assert.Equal(t, domain.LargestPortion{MealType: "dinner", Calories: 500, PortionSize: "large"}, *features.LargestPortion)

	assert.Equal(t, map[string]int{"rice": 1, "chicken": 2, "broccoli": 1, "oats": 1}, features.IngredientFrequency)
	assert.Equal(t, domain.MacroDistribution{CarbHeavy: 1, ProteinRich: 1, Balanced: 1}, features.MacroDistribution)
	assert.Equal(t, map[string]int{"lunch": 1, "dinner": 1, "breakfast": 1}, features.MealTypeDistribution)
	assert.Equal(t, map[string]int{"office": 1, "home": 2}, features.LocationDistribution)

	// input order is untouched
	assert.Equal(t, at(12, 30), meals[0].Timestamp)
}

func TestExtract_CountsMatchInput(t *testing.T) {
	meals := []domain.MealRecord{
		{Timestamp: at(9, 0), Ingredients: []string{"egg", "toast", "egg"}, MacroGuess: "fat heavy"},
		{Timestamp: at(13, 0), Ingredients: []string{"salad"}, MacroGuess: "Protein"},
		{Timestamp: at(16, 0)},
		{Timestamp: at(20, 0), Ingredients: []string{"pasta", "cheese"}, MacroGuess: "mostly carbs"},
	}

	features := Extract(meals)

	sum := 0
	for _, n := range features.IngredientFrequency {
		sum += n
	}
	assert.Equal(t, 6, sum)

	d := features.MacroDistribution
	assert.Equal(t, len(meals), d.CarbHeavy+d.ProteinRich+d.FatHeavy+d.Balanced)
	assert.Equal(t, domain.MacroDistribution{CarbHeavy: 1, ProteinRich: 1, FatHeavy: 1, Balanced: 1}, d)

	mealTypes := 0
	for _, n := range features.MealTypeDistribution {
		mealTypes += n
	}
	assert.Equal(t, len(meals), mealTypes)
	assert.Equal(t, 4, features.MealTypeDistribution["snack"])
}

func TestExtract_LargestPortionTieKeepsFirst(t *testing.T) {
	meals := []domain.MealRecord{
		{Timestamp: at(18, 0), MealType: "dinner", Calories: 600},
		{Timestamp: at(12, 0), MealType: "lunch", Calories: 600},
	}

	features := Extract(meals)

	require.NotNil(t, features.LargestPortion)
	assert.Equal(t, "dinner", features.LargestPortion.MealType)
	assert.Equal(t, domain.DefaultPortionSize, features.LargestPortion.PortionSize)
}

func TestExtract_EqualTimestampsStable(t *testing.T) {
	meals := []domain.MealRecord{
		{Timestamp: at(12, 0), MealType: "lunch"},
		{Timestamp: at(12, 0), MealType: "snack"},
	}

	features := Extract(meals)

	assert.Equal(t, at(12, 0), *features.FirstMealTime)
	assert.Equal(t, at(12, 0), *features.LastMealTime)
}

func TestClassifyMacro(t *testing.T) {
	tests := map[string]domain.MacroGuess{
		"carb-heavy":           domain.MacroCarbHeavy,
		"Carbs":                domain.MacroCarbHeavy,
		"protein-rich":         domain.MacroProteinRich,
		"high PROTEIN":         domain.MacroProteinRich,
		"fat-heavy":            domain.MacroFatHeavy,
		"balanced":             domain.MacroBalanced,
		"":                     domain.MacroBalanced,
		"something else":       domain.MacroBalanced,
		"carb and protein mix": domain.MacroCarbHeavy,
	}

	for in, want := range tests {
		assert.Equal(t, want, ClassifyMacro(in), in)
	}
}
