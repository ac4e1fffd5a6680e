package utils

import "strings"

// MarkdownExtension is appended to every derived output filename.
const MarkdownExtension = ".md"

// TitleToFilename derives an output filename from a display title.
// Only ASCII letters and spaces survive the filter; digits, punctuation and
// non-ASCII text are dropped. Leading and trailing whitespace is trimmed
// and each remaining space becomes an underscore. Consecutive spaces left
// behind by stripped characters are kept, so "Tip #1: Go" turns into
// "Tip__Go.md".
//
// A title with no letters reduces to just the extension. Two titles that
// filter down to the same stem collide; the last document written wins.
func TitleToFilename(title string) string {
	stem := strings.Map(func(r rune) rune {
		if r == ' ' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, title)
	stem = strings.TrimSpace(stem)
	return strings.ReplaceAll(stem, " ", "_") + MarkdownExtension
}
