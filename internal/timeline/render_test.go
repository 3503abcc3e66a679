package timeline

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func sampleEvents() []Event {
	return []Event{
		{Date: Date{Month: "June", Day: 14, Year: 1812}, Text: "A ball is announced"},
		{Date: Date{Month: "July", Day: 20, Year: 1812}, Text: "A letter arrives with unexpected news"},
		{Date: Date{Month: "August", Day: 28, Year: 1812}, Text: "The events in Bath reach their conclusion."},
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, StyleBoxed); got != "No events to display in timeline." {
		t.Fatalf("got %q", got)
	}
}

func TestRenderBoxedWidthInvariant(t *testing.T) {
	out := Render(sampleEvents(), StyleBoxed)
	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Fatalf("boxed render too short: %d lines", len(lines))
	}
	for i, line := range lines {
		if w := utf8.RuneCountInString(line); w != boxedWidth+2 {
			t.Fatalf("line %d is %d runes wide, want %d: %q", i, w, boxedWidth+2, line)
		}
	}
}

func TestRenderBoxedFrame(t *testing.T) {
	out := Render(sampleEvents(), StyleBoxed)
	lines := strings.Split(out, "\n")

	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[0], "┐") {
		t.Fatalf("bad top border: %q", lines[0])
	}
	if !strings.Contains(lines[1], boxedTitle) {
		t.Fatalf("missing title row: %q", lines[1])
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "└") || !strings.HasSuffix(last, "┘") {
		t.Fatalf("bad bottom border: %q", last)
	}
	for _, e := range sampleEvents() {
		if !strings.Contains(out, e.Date.String()) {
			t.Fatalf("missing date %q", e.Date.String())
		}
	}
}

func TestRenderBoxedWrapsLongText(t *testing.T) {
	events := []Event{{
		Date: Date{Month: "June", Day: 5, Year: 1812},
		Text: strings.Repeat("word ", 15) + "end",
	}}
	out := Render(events, StyleBoxed)
	lines := strings.Split(out, "\n")
	// Frame (4 lines) plus at least two content lines.
	if len(lines) < 6 {
		t.Fatalf("long text did not wrap: %d lines\n%s", len(lines), out)
	}
	for i, line := range lines {
		if w := utf8.RuneCountInString(line); w != boxedWidth+2 {
			t.Fatalf("wrapped line %d is %d runes wide: %q", i, w, line)
		}
	}
}

func TestRenderBoxedMultibyteText(t *testing.T) {
	events := []Event{{
		Date: Date{Month: "June", Day: 5, Year: 1812},
		Text: strings.Repeat("fiancée naïveté ", 8) + "end",
	}}
	out := Render(events, StyleBoxed)
	if !utf8.ValidString(out) {
		t.Fatal("render produced invalid UTF-8")
	}
	for i, line := range strings.Split(out, "\n") {
		if w := utf8.RuneCountInString(line); w != boxedWidth+2 {
			t.Fatalf("line %d is %d runes wide, want %d: %q", i, w, boxedWidth+2, line)
		}
	}
}

func TestRenderConnectorShape(t *testing.T) {
	events := sampleEvents()[:2]
	dateWidth := len("June 14th, 1812") + 2

	want := strings.Repeat(" ", 2) + "June 14th, 1812 ┬─ A ball is announced\n" +
		strings.Repeat(" ", dateWidth) + " │\n" +
		strings.Repeat(" ", 2) + "July 20th, 1812 ┬─ A letter arrives with unexpected news"

	if got := Render(events, StyleConnector); got != want {
		t.Fatalf("connector render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderConnectorNoTrailingWhitespace(t *testing.T) {
	out := Render(sampleEvents(), StyleConnector)
	if strings.HasSuffix(out, "\n") {
		t.Fatal("connector render should not end with a newline")
	}
	if strings.ContainsAny(out, "\x1b\r\t") {
		t.Fatal("render must not contain control characters")
	}
}

func TestParseStyle(t *testing.T) {
	if ParseStyle("connector") != StyleConnector {
		t.Fatal("connector not parsed")
	}
	if ParseStyle("Connector ") != StyleConnector {
		t.Fatal("parse should be case-insensitive and trimmed")
	}
	if ParseStyle("boxed") != StyleBoxed || ParseStyle("") != StyleBoxed {
		t.Fatal("default style should be boxed")
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if len(lines) != len(want) {
		t.Fatalf("got %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapHardBreaksLongWord(t *testing.T) {
	lines := wrap("extraordinarily", 5)
	for _, l := range lines {
		if len(l) > 5 {
			t.Fatalf("line %q exceeds width", l)
		}
	}
	if strings.Join(lines, "") != "extraordinarily" {
		t.Fatalf("hard break lost characters: %v", lines)
	}
}

func TestCenter(t *testing.T) {
	if got := center("ab", 6); got != "  ab  " {
		t.Fatalf("got %q", got)
	}
	if got := center("abc", 6); got != " abc  " {
		t.Fatalf("got %q", got)
	}
	if got := center("toolong", 3); got != "too" {
		t.Fatalf("got %q", got)
	}
}
