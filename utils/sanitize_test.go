package utils

import (
	"testing"

	"github.com/ninetyarc/ninetyarc/core"
)

func TestSanitizeStripsMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "slept well, good focus", "slept well, good focus"},
		{"script is stripped", `<script>alert(1)</script>ok`, "ok"},
		{"tags are stripped but text kept", "<b>strong</b> day", "strong day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeNotes(t *testing.T) {
	got := SanitizeNotes(core.Notes{
		Morning: "<img src=x onerror=alert(1)>coffee first",
		Evening: "wound down early",
	})
	if got.Morning != "coffee first" {
		t.Errorf("Morning = %q", got.Morning)
	}
	if got.Evening != "wound down early" {
		t.Errorf("Evening = %q", got.Evening)
	}
	if got.General != "" {
		t.Errorf("General = %q, want empty", got.General)
	}
}
