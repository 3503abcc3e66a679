package export

import (
	"context"
	"strings"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// Exporter defines the interface for finished-story destinations.
type Exporter interface {
	Export(ctx context.Context, story model.Story) error
	Close() error
}

// FormatText renders a story as a plain-text document: a header with
// the title and setting, the cast, the story body, then the timeline
// and quote blocks verbatim. Every exporter that emits readable text
// shares this layout.
func FormatText(s model.Story) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	b.WriteString(rule + "\n")
	b.WriteString(s.Title + "\n")
	b.WriteString(rule + "\n\n")
	b.WriteString("Theme: " + s.Theme + "\n")
	b.WriteString("Setting: " + s.Settings.Location + ", " + s.Settings.Season + ", " + s.Settings.TimePeriod + "\n")
	if !s.CreatedAt.IsZero() {
		b.WriteString("Composed: " + s.CreatedAt.Format("2 January 2006, 15:04") + "\n")
	}

	if len(s.Characters) > 0 {
		b.WriteString("\nDramatis Personae:\n")
		for _, c := range s.Characters {
			b.WriteString("  " + c.Name + ", " + describe(c) + "\n")
		}
	}

	b.WriteString("\n" + strings.TrimSpace(s.Text) + "\n")

	if s.Timeline != "" {
		b.WriteString("\n" + s.Timeline + "\n")
	}
	if s.Quote != "" {
		b.WriteString("\n" + s.Quote + "\n")
	}
	return b.String()
}

func describe(c model.Character) string {
	parts := []string{}
	if c.Occupation != "" {
		parts = append(parts, strings.ToLower(c.Occupation[:1])+c.Occupation[1:])
	}
	if c.SocialClass != "" {
		parts = append(parts, "of the "+strings.ToLower(c.SocialClass))
	}
	if len(parts) == 0 {
		return "a person of the county"
	}
	return strings.Join(parts, " ")
}
