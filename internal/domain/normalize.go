package domain

import (
	"strings"
	"unicode"
)

// SplitLines splits a composition into lines, trimming each one and
// dropping blank lines. Both \n and \r\n line endings are accepted.
// Returns an empty (non-nil) slice for blank input.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// CollapseSpaces replaces every run of Unicode whitespace with a single
// ASCII space and trims the result.
func CollapseSpaces(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := true
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}
