package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02" // yyyy-MM-dd

// TodayISO returns the current calendar day as yyyy-MM-dd in UTC, matching
// the day stamp the server puts on attendance records.
func TodayISO() string {
	return time.Now().UTC().Format(DateLayout)
}

func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	// Try standard RFC3339 format (ISO 8601)
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	// Try with nanoseconds (e.g. 2025-10-13T09:30:00.123Z)
	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	// Try fallback common formats
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		DateLayout,
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}

// FormatDay renders a server date string as yyyy-MM-dd for display, falling
// back to the raw string when it cannot be parsed.
func FormatDay(s string) string {
	t, err := ParseISOTime(s)
	if err != nil {
		return s
	}
	return t.Format(DateLayout)
}
