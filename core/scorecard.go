package core

import "fmt"

// ScorecardDay is one rendered cell of the arc grid. IsEmpty marks alignment
// padding outside the 90 real days; IsFuture marks a real arc date the user
// has not reached yet.
type ScorecardDay struct {
	Date     string `json:"date"`
	Score    int    `json:"score"`
	IsFuture bool   `json:"isFuture"`
	IsEmpty  bool   `json:"isEmpty,omitempty"`
}

// ScorecardWeek is one grid row. WeekTotal sums the scores of the week's
// real, non-future days only; a stale score on a future date never counts.
type ScorecardWeek struct {
	WeekNumber int            `json:"weekNumber"`
	Days       []ScorecardDay `json:"days"`
	WeekTotal  int            `json:"weekTotal"`
}

// Scorecard is the full arc grid, ready for rendering.
type Scorecard struct {
	Weeks []ScorecardWeek `json:"weeks"`
}

// BuildScorecard renders the arc anchored at arcStart as a week grid, with
// "today" resolved in the user's timezone. scores maps date strings to cached
// daily scores; missing dates default to 0, never an error.
func BuildScorecard(arcStart, tz string, scores map[string]int) (Scorecard, error) {
	today, err := TodayInTimezone(tz)
	if err != nil {
		return Scorecard{}, err
	}
	return BuildScorecardAt(arcStart, today, scores)
}

// BuildScorecardAt is BuildScorecard with an explicit reference date, so every
// component of one response agrees on "today".
//
// The grid always contains exactly 90 real day cells. Week one is left-padded
// so day one lands in its weekday column (Sunday first), and the last week is
// right-padded to seven cells. Depending on the start weekday the grid spans
// 13 or 14 rows; it is deliberately not capped at 13.
func BuildScorecardAt(arcStart, today string, scores map[string]int) (Scorecard, error) {
	start, err := ParseDate(arcStart)
	if err != nil {
		return Scorecard{}, fmt.Errorf("invalid arc start date %q: %w", arcStart, err)
	}

	startWeekday := int(start.Weekday()) // 0=Sunday, per UTC-parsed calendar date

	var sc Scorecard
	week := ScorecardWeek{WeekNumber: 1}
	for i := 0; i < startWeekday; i++ {
		week.Days = append(week.Days, ScorecardDay{IsEmpty: true})
	}

	for offset := 0; offset < ArcDays; offset++ {
		date := start.AddDate(0, 0, offset).Format(DateLayout)
		day := ScorecardDay{
			Date:     date,
			Score:    scores[date],
			IsFuture: IsFutureDate(date, today),
		}
		if !day.IsFuture {
			week.WeekTotal += day.Score
		}
		week.Days = append(week.Days, day)
		if len(week.Days) == 7 {
			sc.Weeks = append(sc.Weeks, week)
			week = ScorecardWeek{WeekNumber: len(sc.Weeks) + 1}
		}
	}

	if len(week.Days) > 0 {
		for len(week.Days) < 7 {
			week.Days = append(week.Days, ScorecardDay{IsEmpty: true})
		}
		sc.Weeks = append(sc.Weeks, week)
	}

	return sc, nil
}
