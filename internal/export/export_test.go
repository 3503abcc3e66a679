package export

import (
	"strings"
	"testing"
	"time"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

func sampleStory() model.Story {
	return model.Story{
		Title: "A Summer Tale at Bath",
		Theme: "Love and Courtship",
		Settings: model.Settings{
			Location:   "Bath",
			Season:     "summer",
			TimePeriod: "the Regency era",
		},
		Characters: []model.Character{
			{Name: "Elizabeth Bennet", Occupation: "Governess", SocialClass: "Landed Gentry"},
			{Name: "Mr. Darcy"},
		},
		Text:      "In the summer of that year, Elizabeth arrived at Bath.\n\nShe met Mr. Darcy at the assembly rooms.",
		Timeline:  "┌──────┐\n│ demo │\n└──────┘",
		Quote:     "\"You pierce my soul.\"",
		CreatedAt: time.Date(1813, time.January, 28, 10, 0, 0, 0, time.UTC),
	}
}

func TestFormatTextLayout(t *testing.T) {
	out := FormatText(sampleStory())

	for _, want := range []string{
		"A Summer Tale at Bath",
		"Theme: Love and Courtship",
		"Setting: Bath, summer, the Regency era",
		"Composed: 28 January 1813",
		"Dramatis Personae:",
		"  Elizabeth Bennet, governess of the landed gentry",
		"Elizabeth arrived at Bath.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("formatted text missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTextEmbedsBlocksVerbatim(t *testing.T) {
	s := sampleStory()
	out := FormatText(s)
	if !strings.Contains(out, s.Timeline) {
		t.Fatal("timeline block not embedded verbatim")
	}
	if !strings.Contains(out, s.Quote) {
		t.Fatal("quote block not embedded verbatim")
	}
}

func TestFormatTextOmitsEmptySections(t *testing.T) {
	s := sampleStory()
	s.Characters = nil
	s.Timeline = ""
	s.Quote = ""
	s.CreatedAt = time.Time{}
	out := FormatText(s)
	if strings.Contains(out, "Dramatis Personae") {
		t.Fatal("cast section should be omitted for an empty cast")
	}
	if strings.Contains(out, "Composed:") {
		t.Fatal("composed line should be omitted for zero time")
	}
}

func TestDescribeFallback(t *testing.T) {
	if got := describe(model.Character{Name: "Anon"}); got != "a person of the county" {
		t.Fatalf("describe fallback = %q", got)
	}
}
