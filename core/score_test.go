package core

import "testing"

func perfectEntry() Entry {
	return Entry{
		StudyBlocks: []StudyBlock{
			{Checked: true, Topic: "algorithms"},
			{Checked: true, Topic: "networking"},
			{Checked: true, Topic: "databases"},
			{Checked: true, Topic: "review"},
		},
		Reading:      Reading{Checked: true, BookName: "The Go Programming Language", Pages: 20},
		Pushups:      Pushups{Set1: true, Set2: true, Set3: true},
		Meditation:   Meditation{Checked: true, Method: "breath", Duration: 10},
		WaterBottles: []bool{true, true, true, true, true, true, true, true},
	}
}

func TestScorePerfectDay(t *testing.T) {
	e := perfectEntry()
	if got := Score(e); got != PerfectScore {
		t.Errorf("Score = %d, want %d", got, PerfectScore)
	}
	if !IsComplete(e) {
		t.Error("IsComplete = false, want true")
	}
}

func TestScoreEmptyEntry(t *testing.T) {
	if got := Score(Entry{}); got != 0 {
		t.Errorf("Score(zero entry) = %d, want 0", got)
	}
	if IsComplete(Entry{}) {
		t.Error("zero entry must not be complete")
	}
}

func TestScoreNoPartialCredit(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  int
	}{
		{
			// two of three sets plus extras is still zero points
			"pushups need all three sets",
			Entry{Pushups: Pushups{Set1: true, Set2: true, Set3: false, Extras: 5}},
			0,
		},
		{
			"extras alone never score",
			Entry{Pushups: Pushups{Extras: 100}},
			0,
		},
		{
			"reading pages without the checkbox",
			Entry{Reading: Reading{Checked: false, Pages: 300}},
			0,
		},
		{
			"meditation duration without the checkbox",
			Entry{Meditation: Meditation{Checked: false, Duration: 60}},
			0,
		},
		{
			"seven of eight bottles",
			Entry{WaterBottles: []bool{true, true, true, true, true, true, true, false}},
			0,
		},
		{
			"three of four study blocks",
			Entry{StudyBlocks: []StudyBlock{{Checked: true}, {Checked: true}, {Checked: true}, {Checked: false}}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.entry); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStudyRequiresCanonicalBlockCount(t *testing.T) {
	// A user who added or removed blocks mid-day must not bank the point.
	three := make([]StudyBlock, 3)
	five := make([]StudyBlock, 5)
	for i := range three {
		three[i].Checked = true
	}
	for i := range five {
		five[i].Checked = true
	}

	if CategoryDone(Entry{StudyBlocks: three}, CategoryStudy) {
		t.Error("three all-checked blocks must not satisfy study")
	}
	if CategoryDone(Entry{StudyBlocks: five}, CategoryStudy) {
		t.Error("five all-checked blocks must not satisfy study")
	}
	if CategoryDone(Entry{StudyBlocks: nil}, CategoryStudy) {
		t.Error("missing blocks must not satisfy study")
	}
}

func TestWaterRequiresCanonicalBottleCount(t *testing.T) {
	seven := []bool{true, true, true, true, true, true, true}
	nine := []bool{true, true, true, true, true, true, true, true, true}
	if CategoryDone(Entry{WaterBottles: seven}, CategoryWater) {
		t.Error("seven bottles must not satisfy water")
	}
	if CategoryDone(Entry{WaterBottles: nine}, CategoryWater) {
		t.Error("nine bottles must not satisfy water")
	}
}

func TestScoreOrderIndependence(t *testing.T) {
	// Only "all checked" matters for study, not block positions.
	blocks := []StudyBlock{
		{Checked: true, Topic: "a"},
		{Checked: false, Topic: "b"},
		{Checked: true, Topic: "c"},
		{Checked: true, Topic: "d"},
	}
	e1 := Entry{StudyBlocks: blocks}
	e2 := Entry{StudyBlocks: []StudyBlock{blocks[1], blocks[3], blocks[0], blocks[2]}}
	if Score(e1) != Score(e2) {
		t.Error("permuting study blocks changed the score")
	}
}

func TestScoreBoundsAndIdempotence(t *testing.T) {
	entries := []Entry{{}, perfectEntry(), {Reading: Reading{Checked: true}}}
	for _, e := range entries {
		s := Score(e)
		if s < 0 || s > PerfectScore {
			t.Errorf("Score = %d out of [0, 5]", s)
		}
		if Score(e) != s {
			t.Error("Score is not idempotent")
		}
		if IsComplete(e) != (s == PerfectScore) {
			t.Errorf("IsComplete disagrees with Score == 5 for score %d", s)
		}
	}
}

func TestCategoryDoneUnknownKey(t *testing.T) {
	if CategoryDone(perfectEntry(), "sleep") {
		t.Error("unknown category must never be satisfied")
	}
}

func TestIncompleteTasks(t *testing.T) {
	if tasks := IncompleteTasks(perfectEntry()); len(tasks) != 0 {
		t.Errorf("perfect day has %d incomplete tasks, want 0", len(tasks))
	}

	tasks := IncompleteTasks(Entry{
		StudyBlocks: []StudyBlock{{Checked: true}, {}, {}, {}},
		Pushups:     Pushups{Set1: true, Set2: true},
	})
	if len(tasks) != 5 {
		t.Fatalf("got %d incomplete tasks, want 5", len(tasks))
	}
	if tasks[0].Name != CategoryStudy || tasks[0].Details != "1 of 4 study blocks checked" {
		t.Errorf("study task = %+v", tasks[0])
	}
	if tasks[2].Name != CategoryPushups || tasks[2].Details != "2 of 3 sets done" {
		t.Errorf("pushups task = %+v", tasks[2])
	}
	if tasks[4].Name != CategoryWater || tasks[4].Details != "0 of 8 bottles drunk" {
		t.Errorf("water task = %+v", tasks[4])
	}
}
