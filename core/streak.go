package core

import "sort"

// DayScore pairs an entry date with its cached daily score.
type DayScore struct {
	Date  string `json:"entry_date"`
	Score int    `json:"daily_score"`
}

// StreakResult holds consecutive-perfect-day streaks.
type StreakResult struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// Streaks computes current and longest perfect-day streaks over an arbitrary,
// possibly unsorted history. The persistence layer guarantees one record per
// date; should a duplicate slip through, the later element in the input wins.
//
// A date missing from the history is indistinguishable from an imperfect day:
// the current streak walks back from the latest record and stops at the first
// score below 5 without checking calendar contiguity. Callers provide one
// record per elapsed arc date, so a gap only arises when a day was never
// visited, which scored 0 anyway.
func Streaks(records []DayScore) StreakResult {
	if len(records) == 0 {
		return StreakResult{}
	}

	byDate := make(map[string]int, len(records))
	for _, r := range records {
		byDate[r.Date] = r.Score
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var res StreakResult
	for i := len(dates) - 1; i >= 0; i-- {
		if byDate[dates[i]] != PerfectScore {
			break
		}
		res.Current++
	}

	run := 0
	for _, d := range dates {
		if byDate[d] == PerfectScore {
			run++
			if run > res.Longest {
				res.Longest = run
			}
		} else {
			run = 0
		}
	}
	// The tail-end run never gets closed by a break, so the current streak
	// floors the longest.
	if res.Current > res.Longest {
		res.Longest = res.Current
	}
	return res
}
