package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/ninetyarc/ninetyarc/core"
)

// DailyEntry stores one user's habit record for one calendar date. The
// composite unique index is the invariant the streak and scorecard math rely
// on: at most one row per (user, date).
//
// Habit fields are serialized as JSON columns; DailyScore and IsComplete are
// cache, recomputed from the habit fields on every save.
type DailyEntry struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	UserID       uint              `gorm:"uniqueIndex:uq_entries_user_date;not null" json:"user_id"`
	EntryDate    string            `gorm:"uniqueIndex:uq_entries_user_date;size:10;not null" json:"entry_date"`
	StudyBlocks  []core.StudyBlock `gorm:"serializer:json" json:"study_blocks"`
	Reading      core.Reading      `gorm:"serializer:json" json:"reading"`
	Pushups      core.Pushups      `gorm:"serializer:json" json:"pushups"`
	Meditation   core.Meditation   `gorm:"serializer:json" json:"meditation"`
	WaterBottles []bool            `gorm:"serializer:json" json:"water_bottles"`
	Notes        core.Notes        `gorm:"serializer:json" json:"notes"`
	DailyScore   int               `gorm:"default:0" json:"daily_score"`
	IsComplete   bool              `gorm:"default:false" json:"is_complete"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewDailyEntry returns the default all-unchecked record for a date, with the
// canonical four study blocks and eight water bottles.
func NewDailyEntry(userID uint, date string) *DailyEntry {
	return &DailyEntry{
		UserID:       userID,
		EntryDate:    date,
		StudyBlocks:  make([]core.StudyBlock, core.StudyBlockCount),
		WaterBottles: make([]bool, core.WaterBottleCount),
	}
}

// Habits projects the record into the scoring engine's input shape.
func (e *DailyEntry) Habits() core.Entry {
	return core.Entry{
		StudyBlocks:  e.StudyBlocks,
		Reading:      e.Reading,
		Pushups:      e.Pushups,
		Meditation:   e.Meditation,
		WaterBottles: e.WaterBottles,
	}
}

// Recompute refreshes the cached score fields from the habit fields.
func (e *DailyEntry) Recompute() {
	habits := e.Habits()
	e.DailyScore = core.Score(habits)
	e.IsComplete = core.IsComplete(habits)
}

// BeforeSave recomputes the score cache so no mutation can persist a stale
// DailyScore or IsComplete.
func (e *DailyEntry) BeforeSave(tx *gorm.DB) error {
	e.Recompute()
	return nil
}
