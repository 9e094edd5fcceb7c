package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2025-08-16T15:00:00Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeDateOnly(t *testing.T) {
	got, ok := ParseTime("2025-08-16")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2025 || got.Month() != time.August || got.Day() != 16 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2025, 8, 16, 15, 0, 0, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	got := ParseTimeDefault("not-a-date", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestDayKey(t *testing.T) {
	if got := DayKey("2025-08-16T19:45:00Z"); got != "2025-08-16" {
		t.Fatalf("timestamp should collapse to its day, got %q", got)
	}
	if got := DayKey("2025-08-16"); got != "2025-08-16" {
		t.Fatalf("date key should pass through, got %q", got)
	}
	today := time.Now().UTC().Format("2006-01-02")
	if got := DayKey(""); got != today {
		t.Fatalf("empty input should default to today, got %q", got)
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 8, 16, 19, 45, 0, 0, time.UTC)
	start, end := DayBounds(at)
	if start.Hour() != 0 || !end.Equal(start.Add(24*time.Hour)) {
		t.Fatalf("unexpected bounds %v %v", start, end)
	}
}
