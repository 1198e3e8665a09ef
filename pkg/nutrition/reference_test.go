package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBestMatch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		matched bool
	}{
		{"exact", "salmon", "salmon", true},
		{"case and whitespace", "  Chicken Breast ", "chicken breast", true},
		{"name contains key", "grilled chicken breast with herbs", "chicken breast", true},
		{"key contains name", "egg", "eggs", true},
		{"first entry wins", "brown rice and broccoli", "brown rice", true},
		{"no match", "grilled tofu cubes", "", false},
		{"empty", "", "", false},
		{"blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := FindBestMatch(tt.input)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, entry.Name)
		})
	}
}

func TestReferenceTable_ReturnsCopy(t *testing.T) {
	table := ReferenceTable()
	assert.Len(t, table, 10)

	table[0].Profile.Calories = 1
	entry, ok := FindBestMatch("chicken breast")
	assert.True(t, ok)
	assert.Equal(t, 165.0, entry.Profile.Calories)
}
