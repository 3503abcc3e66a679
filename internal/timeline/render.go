package timeline

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderStyle selects one of the two timeline presentations.
type RenderStyle int

const (
	// StyleBoxed is the canonical bordered table with a title row and
	// word-wrapped event cells.
	StyleBoxed RenderStyle = iota
	// StyleConnector is the sparse spine layout using ┬─ and │
	// connectors, kept as a display variant. Event text is emitted
	// as-is, with no wrapping beyond the entry cap.
	StyleConnector
)

// ParseStyle maps a style name to a RenderStyle. Unknown names default
// to the boxed style.
func ParseStyle(name string) RenderStyle {
	if strings.EqualFold(strings.TrimSpace(name), "connector") {
		return StyleConnector
	}
	return StyleBoxed
}

// boxedWidth is the inner width of the boxed table, in characters.
const boxedWidth = 70

const boxedTitle = "STORY TIMELINE"

// Render formats events in the given style. The output is plain text
// with Unicode box-drawing characters only, no ANSI codes and no
// trailing control characters, so it can be embedded verbatim in
// console output and saved exports.
func Render(events []Event, style RenderStyle) string {
	if len(events) == 0 {
		return "No events to display in timeline."
	}
	if style == StyleConnector {
		return renderConnector(events)
	}
	return renderBoxed(events)
}

func dateColumnWidth(events []Event) int {
	w := 0
	for _, e := range events {
		if l := utf8.RuneCountInString(e.Date.String()); l > w {
			w = l
		}
	}
	return w + 2
}

// renderBoxed emits a bordered table. Every line is exactly
// boxedWidth+2 characters wide; event text longer than its cell wraps
// onto continuation lines aligned under the first.
func renderBoxed(events []Event) string {
	dateWidth := dateColumnWidth(events)
	textWidth := boxedWidth - dateWidth - 1

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", boxedWidth) + "┐\n")
	b.WriteString("│" + center(boxedTitle, boxedWidth) + "│\n")
	b.WriteString("├" + strings.Repeat("─", boxedWidth) + "┤\n")

	for _, e := range events {
		lines := wrap(e.Text, textWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		for i, line := range lines {
			date := ""
			if i == 0 {
				date = e.Date.String()
			}
			fmt.Fprintf(&b, "│ %-*s%-*s│\n", dateWidth, date, textWidth, line)
		}
	}

	b.WriteString("└" + strings.Repeat("─", boxedWidth) + "┘")
	return b.String()
}

// renderConnector emits the spine layout: right-justified dates, one
// event per row, vertical connectors between rows.
func renderConnector(events []Event) string {
	dateWidth := dateColumnWidth(events)

	var b strings.Builder
	for i, e := range events {
		fmt.Fprintf(&b, "%*s ┬─ %s", dateWidth, e.Date.String(), e.Text)
		if i < len(events)-1 {
			b.WriteString("\n" + strings.Repeat(" ", dateWidth) + " │\n")
		}
	}
	return b.String()
}

// wrap splits text into lines of at most width runes, breaking on
// spaces where possible. Words longer than width are hard-split. Rune
// counting keeps cells aligned for multibyte text.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
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

// center pads s with spaces to the given width in runes, splitting the
// slack evenly.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
