package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var leadingNumber = regexp.MustCompile(`-?\d+(\.\d+)?`)

// FlexFloat decodes a JSON number, or a string holding one ("25", "25g", "about 200").
// Strings without any digits decode to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		match := leadingNumber.FindString(s)
		if match == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return err
		}
		*f = FlexFloat(v)
		return nil
	}

	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FlexTime decodes ISO-8601 strings in the common layouts, or a unix timestamp in
// seconds or milliseconds. Unparseable values leave the zero time.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t.Time = ParseTimestamp(s)
		return nil
	}

	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return nil
	}
	t.Time = unixToTime(v)
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// ParseTimestamp parses s with the accepted layouts, returning the zero time on failure.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return unixToTime(v)
	}
	return time.Time{}
}

func unixToTime(v float64) time.Time {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return time.Time{}
	}
	if v > 1e12 {
		return time.UnixMilli(int64(v)).UTC()
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}
