package core

import "math"

// TargetCompletion returns the percentage (0-100, rounded half up) of entries
// where the given category's completion predicate holds. An empty input yields
// 0, as does an unrecognized category key: the route layer restricts keys to
// the five known categories, so the silent branch is unreachable via the API.
func TargetCompletion(entries []Entry, category string) int {
	if len(entries) == 0 {
		return 0
	}
	completed := 0
	for _, e := range entries {
		if CategoryDone(e, category) {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(entries))))
}

// CompletionByCategory aggregates TargetCompletion across all five categories.
func CompletionByCategory(entries []Entry) map[string]int {
	out := make(map[string]int, len(Categories))
	for _, cat := range Categories {
		out[cat] = TargetCompletion(entries, cat)
	}
	return out
}
