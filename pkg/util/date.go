package util

import (
	"strconv"
	"time"
)

const dateOnly = "2006-01-02"

// ParseTime tries RFC3339, a plain YYYY-MM-DD date, and unix seconds.
// Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// DayBounds returns the UTC start and end of the day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// DayKey normalizes a date or timestamp string to its UTC YYYY-MM-DD day,
// falling back to today when the input is empty or unparseable.
func DayKey(s string) string {
	if t, ok := ParseTime(s); ok {
		start, _ := DayBounds(t)
		return start.Format(dateOnly)
	}
	return time.Now().UTC().Format(dateOnly)
}
