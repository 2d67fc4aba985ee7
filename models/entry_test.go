package models

import (
	"testing"

	"github.com/ninetyarc/ninetyarc/core"
)

func TestNewDailyEntryDefaults(t *testing.T) {
	e := NewDailyEntry(7, "2025-03-10")
	if e.UserID != 7 || e.EntryDate != "2025-03-10" {
		t.Errorf("unexpected keys: %+v", e)
	}
	if len(e.StudyBlocks) != core.StudyBlockCount {
		t.Errorf("got %d study blocks, want %d", len(e.StudyBlocks), core.StudyBlockCount)
	}
	if len(e.WaterBottles) != core.WaterBottleCount {
		t.Errorf("got %d water bottles, want %d", len(e.WaterBottles), core.WaterBottleCount)
	}
	e.Recompute()
	if e.DailyScore != 0 || e.IsComplete {
		t.Errorf("default entry should score 0: score=%d complete=%v", e.DailyScore, e.IsComplete)
	}
}

func TestBeforeSaveRecomputesScoreCache(t *testing.T) {
	e := NewDailyEntry(1, "2025-03-10")
	for i := range e.StudyBlocks {
		e.StudyBlocks[i].Checked = true
	}
	for i := range e.WaterBottles {
		e.WaterBottles[i] = true
	}
	e.Reading.Checked = true
	e.Pushups = core.Pushups{Set1: true, Set2: true, Set3: true}
	e.Meditation.Checked = true

	// A stale cache must never survive a save.
	e.DailyScore = 1
	e.IsComplete = false
	if err := e.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave error: %v", err)
	}
	if e.DailyScore != core.PerfectScore || !e.IsComplete {
		t.Errorf("after save: score=%d complete=%v, want 5/true", e.DailyScore, e.IsComplete)
	}

	e.Pushups.Set3 = false
	if err := e.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave error: %v", err)
	}
	if e.DailyScore != 4 || e.IsComplete {
		t.Errorf("after unchecking a set: score=%d complete=%v, want 4/false", e.DailyScore, e.IsComplete)
	}
}
