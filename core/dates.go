// Package core implements the scoring, streak, and scorecard engine for a
// 90-day arc. Every function here is a pure computation over in-memory data:
// no storage, no clocks hidden in loops, safe for concurrent use.
package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// DateLayout is the canonical calendar-date format used everywhere.
	DateLayout = "2006-01-02"
	// ArcDays is the length of one arc.
	ArcDays = 90
	// ArcWeeks is the nominal week count of the scorecard. The real grid can
	// hold one extra week depending on the arc start weekday; see BuildScorecard.
	ArcWeeks = 13
)

// ErrInvalidTimezone reports an unknown IANA timezone identifier. This is the
// one loud failure of the package: silently falling back to UTC would skew
// every downstream date, streak, and scorecard computation for the user.
var ErrInvalidTimezone = errors.New("invalid timezone")

// TodayInTimezone returns the current calendar date (YYYY-MM-DD) in the given
// IANA timezone, DST-correct via the zone database.
func TodayInTimezone(tz string) (string, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return "", err
	}
	return time.Now().In(loc).Format(DateLayout), nil
}

// ValidateTimezone reports whether tz names a known IANA zone.
func ValidateTimezone(tz string) error {
	_, err := loadLocation(tz)
	return err
}

func loadLocation(tz string) (*time.Location, error) {
	// time.LoadLocation("") means UTC; an empty profile field is a caller bug,
	// not a request for UTC.
	if tz == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	return loc, nil
}

// DayNumber returns which day of the arc the current date falls on: the
// ceiling of the absolute day difference from arcStart, clamped to [0, 90].
// Day 0 occurs only when current equals arcStart exactly, meaning the arc has
// not yet begun its first full day. Malformed dates yield 0.
func DayNumber(arcStart, current string) int {
	start, err := ParseDate(arcStart)
	if err != nil {
		return 0
	}
	cur, err := ParseDate(current)
	if err != nil {
		return 0
	}
	days := int(math.Ceil(math.Abs(cur.Sub(start).Hours() / 24)))
	if days < 0 {
		days = 0
	}
	if days > ArcDays {
		days = ArcDays
	}
	return days
}

// WeekNumber returns the arc week for the current date, ceil(day/7) clamped to
// [1, 13]. Day 0 still reports week 1.
func WeekNumber(arcStart, current string) int {
	week := (DayNumber(arcStart, current) + 6) / 7
	if week < 1 {
		week = 1
	}
	if week > ArcWeeks {
		week = ArcWeeks
	}
	return week
}

// IsFutureDate reports whether date strictly follows today. Both are
// YYYY-MM-DD strings, so a lexicographic comparison is a calendar comparison
// and avoids any time-of-day or timezone ambiguity.
func IsFutureDate(date, today string) bool {
	return date > today
}

// ParseDate parses a YYYY-MM-DD string at midnight UTC. Calendar dates are
// timezone-agnostic; parsing in a local zone would shift them across midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
