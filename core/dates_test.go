package core

import (
	"errors"
	"testing"
	"time"
)

func TestDayNumber(t *testing.T) {
	tests := []struct {
		name     string
		arcStart string
		current  string
		want     int
	}{
		{"same day is day zero", "2025-03-10", "2025-03-10", 0},
		{"next day is day one", "2025-03-10", "2025-03-11", 1},
		{"one week in", "2025-03-10", "2025-03-17", 7},
		{"final arc day", "2025-03-10", "2025-06-08", 90},
		{"past arc end clamps to ninety", "2025-03-10", "2025-07-01", 90},
		{"before start uses absolute difference", "2025-03-10", "2025-03-05", 5},
		{"across a month boundary", "2025-01-30", "2025-02-02", 3},
		{"malformed current", "2025-03-10", "not-a-date", 0},
		{"malformed start", "nope", "2025-03-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayNumber(tt.arcStart, tt.current); got != tt.want {
				t.Errorf("DayNumber(%q, %q) = %d, want %d", tt.arcStart, tt.current, got, tt.want)
			}
		})
	}
}

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		name     string
		arcStart string
		current  string
		want     int
	}{
		{"day zero reports week one", "2025-03-10", "2025-03-10", 1},
		{"day one", "2025-03-10", "2025-03-11", 1},
		{"day seven closes week one", "2025-03-10", "2025-03-17", 1},
		{"day eight opens week two", "2025-03-10", "2025-03-18", 2},
		{"day ninety is week thirteen", "2025-03-10", "2025-06-08", 13},
		{"past arc end clamps to thirteen", "2025-03-10", "2025-09-01", 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekNumber(tt.arcStart, tt.current); got != tt.want {
				t.Errorf("WeekNumber(%q, %q) = %d, want %d", tt.arcStart, tt.current, got, tt.want)
			}
		})
	}
}

func TestIsFutureDate(t *testing.T) {
	today := "2025-03-15"
	if IsFutureDate("2025-03-15", today) {
		t.Error("today must not be future")
	}
	if IsFutureDate("2025-03-14", today) {
		t.Error("yesterday must not be future")
	}
	if !IsFutureDate("2025-03-16", today) {
		t.Error("tomorrow must be future")
	}
	if !IsFutureDate("2026-01-01", today) {
		t.Error("next year must be future")
	}
}

func TestTodayInTimezone(t *testing.T) {
	got, err := TodayInTimezone("America/New_York")
	if err != nil {
		t.Fatalf("TodayInTimezone(America/New_York) error: %v", err)
	}
	if _, err := time.Parse(DateLayout, got); err != nil {
		t.Errorf("result %q is not a YYYY-MM-DD date: %v", got, err)
	}
}

func TestTodayInTimezoneInvalid(t *testing.T) {
	for _, tz := range []string{"", "Not/AZone", "EST5EDTXX"} {
		if _, err := TodayInTimezone(tz); !errors.Is(err, ErrInvalidTimezone) {
			t.Errorf("TodayInTimezone(%q) error = %v, want ErrInvalidTimezone", tz, err)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	if err := ValidateTimezone("Europe/Berlin"); err != nil {
		t.Errorf("Europe/Berlin should be valid: %v", err)
	}
	if err := ValidateTimezone("Mars/Olympus"); !errors.Is(err, ErrInvalidTimezone) {
		t.Errorf("Mars/Olympus error = %v, want ErrInvalidTimezone", err)
	}
}

func TestParseDateIsMidnightUTC(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.Location() != time.UTC {
		t.Errorf("parsed location = %v, want UTC", d.Location())
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("parsed time = %v, want midnight", d)
	}
}
