package timeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Extraction limits. A long paragraph is reduced to its first sentence
// when that sentence is short enough, otherwise hard-truncated. Entry
// text is capped again when the event list is assembled; the two passes
// are intentionally separate.
const (
	longParagraph = 200
	maxSentence   = 150
	maxEntry      = 80
)

var firstSentence = regexp.MustCompile(`^(.+?[.!?])(?:\s|$)`)

// extractEvent reduces a paragraph to a short event description.
// Section markers (lines starting with '#') yield "" and never become
// events. Limits count runes, not bytes, so multibyte text is never
// cut mid-character.
func extractEvent(paragraph string) string {
	if strings.HasPrefix(strings.TrimSpace(paragraph), "#") {
		return ""
	}
	if utf8.RuneCountInString(paragraph) > longParagraph {
		if m := firstSentence.FindStringSubmatch(paragraph); m != nil && utf8.RuneCountInString(m[1]) < maxSentence {
			return m[1]
		}
		return string([]rune(paragraph)[:maxSentence]) + "..."
	}
	return paragraph
}

// capEntry truncates entry text to the renderer column budget.
func capEntry(text string) string {
	if utf8.RuneCountInString(text) > maxEntry {
		return string([]rune(text)[:maxEntry-3]) + "..."
	}
	return text
}
