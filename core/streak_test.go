package core

import "testing"

func TestStreaksEmptyHistory(t *testing.T) {
	got := Streaks(nil)
	if got.Current != 0 || got.Longest != 0 {
		t.Errorf("Streaks(nil) = %+v, want zeroes", got)
	}
}

func TestStreaksSinglePerfectDay(t *testing.T) {
	got := Streaks([]DayScore{{Date: "2025-03-10", Score: 5}})
	if got.Current != 1 || got.Longest != 1 {
		t.Errorf("got %+v, want current=1 longest=1", got)
	}
}

func TestStreaksAllImperfect(t *testing.T) {
	got := Streaks([]DayScore{
		{Date: "2025-03-10", Score: 3},
		{Date: "2025-03-11", Score: 0},
		{Date: "2025-03-12", Score: 4},
	})
	if got.Current != 0 || got.Longest != 0 {
		t.Errorf("got %+v, want zeroes", got)
	}
}

func TestStreaksTailRun(t *testing.T) {
	// Imperfect first day, then three perfect: the open tail run is both the
	// current streak and the longest.
	got := Streaks([]DayScore{
		{Date: "2025-03-10", Score: 3},
		{Date: "2025-03-11", Score: 5},
		{Date: "2025-03-12", Score: 5},
		{Date: "2025-03-13", Score: 5},
	})
	if got.Current != 3 || got.Longest != 3 {
		t.Errorf("got %+v, want current=3 longest=3", got)
	}
}

func TestStreaksBrokenInTheMiddle(t *testing.T) {
	got := Streaks([]DayScore{
		{Date: "2025-03-10", Score: 5},
		{Date: "2025-03-11", Score: 5},
		{Date: "2025-03-12", Score: 5},
		{Date: "2025-03-13", Score: 5},
		{Date: "2025-03-14", Score: 5},
		{Date: "2025-03-15", Score: 3},
		{Date: "2025-03-16", Score: 5},
		{Date: "2025-03-17", Score: 5},
	})
	if got.Current != 2 {
		t.Errorf("current = %d, want 2", got.Current)
	}
	if got.Longest != 5 {
		t.Errorf("longest = %d, want 5", got.Longest)
	}
}

func TestStreaksRunAtStartOfHistory(t *testing.T) {
	// The early run is preserved as longest even though the latest day breaks
	// the current streak.
	got := Streaks([]DayScore{
		{Date: "2025-03-10", Score: 5},
		{Date: "2025-03-11", Score: 5},
		{Date: "2025-03-12", Score: 5},
		{Date: "2025-03-13", Score: 2},
	})
	if got.Current != 0 {
		t.Errorf("current = %d, want 0", got.Current)
	}
	if got.Longest != 3 {
		t.Errorf("longest = %d, want 3", got.Longest)
	}
}

func TestStreaksUnsortedInput(t *testing.T) {
	got := Streaks([]DayScore{
		{Date: "2025-03-13", Score: 5},
		{Date: "2025-03-10", Score: 3},
		{Date: "2025-03-12", Score: 5},
		{Date: "2025-03-11", Score: 5},
	})
	if got.Current != 3 || got.Longest != 3 {
		t.Errorf("got %+v, want current=3 longest=3", got)
	}
}

func TestStreaksDuplicateDatesKeepLatest(t *testing.T) {
	// One row per date is the persistence invariant; if it is ever violated
	// the later record wins rather than corrupting contiguity.
	got := Streaks([]DayScore{
		{Date: "2025-03-10", Score: 5},
		{Date: "2025-03-11", Score: 2},
		{Date: "2025-03-11", Score: 5},
	})
	if got.Current != 2 || got.Longest != 2 {
		t.Errorf("got %+v, want current=2 longest=2", got)
	}
}

func TestStreaksAppendPerfectDay(t *testing.T) {
	history := []DayScore{
		{Date: "2025-03-10", Score: 5},
		{Date: "2025-03-11", Score: 5},
	}
	before := Streaks(history)
	after := Streaks(append(history, DayScore{Date: "2025-03-12", Score: 5}))
	if after.Current != before.Current+1 {
		t.Errorf("appending a perfect day: current %d -> %d, want +1", before.Current, after.Current)
	}

	broken := []DayScore{
		{Date: "2025-03-10", Score: 5},
		{Date: "2025-03-11", Score: 1},
	}
	after = Streaks(append(broken, DayScore{Date: "2025-03-12", Score: 5}))
	if after.Current != 1 {
		t.Errorf("perfect day after a break: current = %d, want 1", after.Current)
	}
}
