package utils

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/ninetyarc/ninetyarc/core"
)

// Notes are rendered as plain journal text; strip all markup.
var notesPolicy = bluemonday.StrictPolicy()

// Sanitize strips HTML from free-text input to prevent stored XSS.
func Sanitize(input string) string {
	return notesPolicy.Sanitize(input)
}

// SanitizeNotes cleans every free-text field of a notes block.
func SanitizeNotes(n core.Notes) core.Notes {
	return core.Notes{
		Morning: notesPolicy.Sanitize(n.Morning),
		Evening: notesPolicy.Sanitize(n.Evening),
		General: notesPolicy.Sanitize(n.General),
	}
}
