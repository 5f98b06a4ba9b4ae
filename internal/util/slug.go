package util

import (
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^A-Za-z0-9_\-]`)

// Slugify makes a participant name safe for use in a result filename:
// surrounding whitespace is trimmed, inner spaces become underscores and
// everything outside [A-Za-z0-9_-] is dropped.
func Slugify(text string) string {
	text = strings.ReplaceAll(strings.TrimSpace(text), " ", "_")
	return slugStrip.ReplaceAllString(text, "")
}
