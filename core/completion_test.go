package core

import "testing"

func TestTargetCompletionEmpty(t *testing.T) {
	for _, cat := range Categories {
		if got := TargetCompletion(nil, cat); got != 0 {
			t.Errorf("TargetCompletion(nil, %s) = %d, want 0", cat, got)
		}
	}
}

func TestTargetCompletionAllSatisfied(t *testing.T) {
	entries := []Entry{perfectEntry(), perfectEntry(), perfectEntry()}
	for _, cat := range Categories {
		if got := TargetCompletion(entries, cat); got != 100 {
			t.Errorf("TargetCompletion(all perfect, %s) = %d, want 100", cat, got)
		}
	}
}

func TestTargetCompletionHalf(t *testing.T) {
	allChecked := make([]StudyBlock, StudyBlockCount)
	for i := range allChecked {
		allChecked[i].Checked = true
	}
	entries := []Entry{
		{StudyBlocks: allChecked},
		{StudyBlocks: make([]StudyBlock, StudyBlockCount)},
	}
	if got := TargetCompletion(entries, CategoryStudy); got != 50 {
		t.Errorf("TargetCompletion = %d, want 50", got)
	}
}

func TestTargetCompletionRounding(t *testing.T) {
	reading := Entry{Reading: Reading{Checked: true}}
	tests := []struct {
		name    string
		entries []Entry
		want    int
	}{
		{"one third rounds down", []Entry{reading, {}, {}}, 33},
		{"two thirds rounds up", []Entry{reading, reading, {}}, 67},
		{"exact half rounds up", []Entry{reading, {}, {}, {}, {}, {}, {}, {}}, 13}, // 12.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetCompletion(tt.entries, CategoryReading); got != tt.want {
				t.Errorf("TargetCompletion = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTargetCompletionUnknownCategory(t *testing.T) {
	if got := TargetCompletion([]Entry{perfectEntry()}, "sleep"); got != 0 {
		t.Errorf("unknown category = %d, want 0", got)
	}
}

func TestCompletionByCategory(t *testing.T) {
	entries := []Entry{
		{Reading: Reading{Checked: true}, Meditation: Meditation{Checked: true}},
		{Reading: Reading{Checked: true}},
	}
	got := CompletionByCategory(entries)
	if len(got) != len(Categories) {
		t.Fatalf("got %d categories, want %d", len(got), len(Categories))
	}
	if got[CategoryReading] != 100 {
		t.Errorf("reading = %d, want 100", got[CategoryReading])
	}
	if got[CategoryMeditation] != 50 {
		t.Errorf("meditation = %d, want 50", got[CategoryMeditation])
	}
	if got[CategoryStudy] != 0 || got[CategoryPushups] != 0 || got[CategoryWater] != 0 {
		t.Errorf("unexercised categories should be 0: %+v", got)
	}
}
