package core

import "fmt"

const (
	// StudyBlockCount is the canonical number of study blocks per day.
	StudyBlockCount = 4
	// WaterBottleCount is the canonical number of water bottles per day.
	WaterBottleCount = 8
	// PerfectScore is the score of a day with every category satisfied.
	PerfectScore = 5
)

// Habit category keys as they appear in API payloads.
const (
	CategoryStudy      = "study"
	CategoryReading    = "reading"
	CategoryPushups    = "pushups"
	CategoryMeditation = "meditation"
	CategoryWater      = "water"
)

// Categories lists the five habit categories in scoring order.
var Categories = []string{CategoryStudy, CategoryReading, CategoryPushups, CategoryMeditation, CategoryWater}

// StudyBlock is one checkbox in the day's study plan.
type StudyBlock struct {
	Checked bool   `json:"checked"`
	Topic   string `json:"topic"`
}

// Reading tracks the day's reading habit. Pages and book name are
// informational only and never affect scoring.
type Reading struct {
	Checked  bool   `json:"checked"`
	BookName string `json:"bookName"`
	Pages    int    `json:"pages"`
}

// Pushups tracks three required sets plus optional extras. Extras never
// contribute to the score.
type Pushups struct {
	Set1   bool `json:"set1"`
	Set2   bool `json:"set2"`
	Set3   bool `json:"set3"`
	Extras int  `json:"extras"`
}

// Meditation tracks the day's meditation habit. Method and duration are
// informational only.
type Meditation struct {
	Checked  bool   `json:"checked"`
	Method   string `json:"method"`
	Duration int    `json:"duration"`
}

// Notes holds free-text journal fields. Never scored.
type Notes struct {
	Morning string `json:"morning,omitempty"`
	Evening string `json:"evening,omitempty"`
	General string `json:"general,omitempty"`
}

// Entry is one day's habit record as seen by the scoring engine. Zero values
// score zero in every category, so a partially filled or malformed record
// always scores cleanly.
type Entry struct {
	StudyBlocks  []StudyBlock `json:"study_blocks"`
	Reading      Reading      `json:"reading"`
	Pushups      Pushups      `json:"pushups"`
	Meditation   Meditation   `json:"meditation"`
	WaterBottles []bool       `json:"water_bottles"`
}

// Score returns the day's score: one point per satisfied category, 0 to 5.
func Score(e Entry) int {
	score := 0
	for _, cat := range Categories {
		if CategoryDone(e, cat) {
			score++
		}
	}
	return score
}

// IsComplete reports a perfect day: all five categories satisfied.
func IsComplete(e Entry) bool {
	return Score(e) == PerfectScore
}

// CategoryDone evaluates a single category's completion predicate. Unknown
// category keys are never satisfied.
func CategoryDone(e Entry, category string) bool {
	switch category {
	case CategoryStudy:
		return studyDone(e.StudyBlocks)
	case CategoryReading:
		return e.Reading.Checked
	case CategoryPushups:
		return e.Pushups.Set1 && e.Pushups.Set2 && e.Pushups.Set3
	case CategoryMeditation:
		return e.Meditation.Checked
	case CategoryWater:
		return waterDone(e.WaterBottles)
	default:
		return false
	}
}

// studyDone requires exactly four blocks, all checked. Records where the user
// added or removed blocks mid-day must not bank the point on a malformed list.
func studyDone(blocks []StudyBlock) bool {
	if len(blocks) != StudyBlockCount {
		return false
	}
	for _, b := range blocks {
		if !b.Checked {
			return false
		}
	}
	return true
}

// waterDone requires exactly eight bottles, all drunk.
func waterDone(bottles []bool) bool {
	if len(bottles) != WaterBottleCount {
		return false
	}
	for _, drunk := range bottles {
		if !drunk {
			return false
		}
	}
	return true
}

// Task describes one unfinished habit, in the shape reminder consumers expect.
type Task struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// IncompleteTasks inverts the category predicates and describes what remains
// to finish the day. A perfect day yields an empty list.
func IncompleteTasks(e Entry) []Task {
	var tasks []Task
	if !studyDone(e.StudyBlocks) {
		checked := 0
		for _, b := range e.StudyBlocks {
			if b.Checked {
				checked++
			}
		}
		tasks = append(tasks, Task{
			Name:    CategoryStudy,
			Details: fmt.Sprintf("%d of %d study blocks checked", checked, StudyBlockCount),
		})
	}
	if !e.Reading.Checked {
		tasks = append(tasks, Task{Name: CategoryReading, Details: "reading not checked"})
	}
	if !CategoryDone(e, CategoryPushups) {
		done := 0
		for _, set := range []bool{e.Pushups.Set1, e.Pushups.Set2, e.Pushups.Set3} {
			if set {
				done++
			}
		}
		tasks = append(tasks, Task{
			Name:    CategoryPushups,
			Details: fmt.Sprintf("%d of 3 sets done", done),
		})
	}
	if !e.Meditation.Checked {
		tasks = append(tasks, Task{Name: CategoryMeditation, Details: "meditation not checked"})
	}
	if !waterDone(e.WaterBottles) {
		drunk := 0
		for _, b := range e.WaterBottles {
			if b {
				drunk++
			}
		}
		tasks = append(tasks, Task{
			Name:    CategoryWater,
			Details: fmt.Sprintf("%d of %d bottles drunk", drunk, WaterBottleCount),
		})
	}
	return tasks
}
