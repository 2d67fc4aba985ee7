package utils

import "testing"

func TestWithinArc(t *testing.T) {
	tests := []struct {
		name     string
		arcStart string
		today    string
		want     bool
	}{
		{"arc start day counts", "2025-01-05", "2025-01-05", true},
		{"mid arc", "2025-01-05", "2025-02-20", true},
		{"day ninety is the last in", "2025-01-05", "2025-04-04", true},
		{"arc end is exclusive", "2025-01-05", "2025-04-05", false},
		{"before the arc", "2025-01-05", "2025-01-04", false},
		{"malformed start", "soon", "2025-01-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinArc(tt.arcStart, tt.today); got != tt.want {
				t.Errorf("withinArc(%q, %q) = %v, want %v", tt.arcStart, tt.today, got, tt.want)
			}
		})
	}
}
