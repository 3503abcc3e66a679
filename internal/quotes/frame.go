package quotes

import (
	"strings"
	"unicode/utf8"
)

// frameWidth is the inner width of a framed quote, in characters.
const frameWidth = 64

// Framed renders the quote in a decorative frame with attribution, for
// embedding beneath a story. Plain text only, no control characters.
func (q Quote) Framed(includeContext bool) string {
	var b strings.Builder
	border := strings.Repeat("═", frameWidth)

	b.WriteString("╔" + border + "╗\n")
	for _, line := range wrapWords("\""+q.Text+"\"", frameWidth-4) {
		b.WriteString("║  " + pad(line, frameWidth-2) + "║\n")
	}
	b.WriteString("║" + strings.Repeat(" ", frameWidth) + "║\n")
	b.WriteString("║  " + pad("- "+q.Source, frameWidth-2) + "║\n")
	b.WriteString("╚" + border + "╝")

	if includeContext && q.Context != "" {
		b.WriteString("\n" + q.Context)
	}
	return b.String()
}

// pad and wrapWords measure runes, not bytes, so accented text keeps
// the frame edges aligned.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}

func wrapWords(text string, width int) []string {
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		switch {
		case len(line) == 0:
			line = runes
		case len(line)+1+len(runes) <= width:
			line = append(append(line, ' '), runes...)
		default:
			lines = append(lines, string(line))
			line = runes
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
