package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// strips spaces, turns snake_case into Title Case, e.g. "career_fair" into
// "Career Fair"
func CleanupString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = cases.Title(language.English).String(s)
	return s
}

// fit s into width terminal cells, padding or cutting with an ellipsis
func FitWidth(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
