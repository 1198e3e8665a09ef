package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat(t *testing.T) {
	tests := map[string]float64{
		`25`:          25,
		`12.5`:        12.5,
		`"25"`:        25,
		`"31g"`:       31,
		`"about 200"`: 200,
		`"4.5 grams"`: 4.5,
		`"none"`:      0,
		`""`:          0,
		`"-3"`:        -3,
	}

	for in, want := range tests {
		var f FlexFloat
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.Equal(t, want, f.Float64(), in)
	}
}

func TestFlexFloat_NullLeavesValue(t *testing.T) {
	f := FlexFloat(7)
	require.NoError(t, f.UnmarshalJSON([]byte("null")))
	assert.Equal(t, 7.0, f.Float64())
}

func TestFlexFloat_RejectsNonNumeric(t *testing.T) {
	var f FlexFloat
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestFlexTime(t *testing.T) {
	tests := map[string]time.Time{
		`"2026-03-14T08:15:00Z"`:   time.Date(2026, 3, 14, 8, 15, 0, 0, time.UTC),
		`"2026-03-14T08:15:00.5Z"`: time.Date(2026, 3, 14, 8, 15, 0, 500000000, time.UTC),
		`"2026-03-14 08:15:00"`:    time.Date(2026, 3, 14, 8, 15, 0, 0, time.UTC),
		`"2026-03-14"`:             time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		`1773476100`:               time.Unix(1773476100, 0).UTC(),
		`1773476100000`:            time.UnixMilli(1773476100000).UTC(),
		`"1773476100"`:             time.Unix(1773476100, 0).UTC(),
		`"yesterday"`:              {},
		`null`:                     {},
	}

	for in, want := range tests {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(in), &ft), in)
		assert.True(t, want.Equal(ft.Time), "%s: got %v", in, ft.Time)
	}
}

func TestFlexTime_Marshal(t *testing.T) {
	b, err := json.Marshal(FlexTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = json.Marshal(FlexTime{time.Date(2026, 3, 14, 8, 15, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-14T08:15:00Z"`, string(b))
}
