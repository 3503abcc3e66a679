// Package timeline turns generated story prose into a dated, fixed-width
// ASCII timeline.
//
// The pipeline is: split the story into paragraphs, select significant
// ones (character mentions and action keywords, spread evenly across the
// story), reduce each to a short event description, assign synthetic
// in-season Regency dates, add introduction/conclusion bookends and a
// little seasonal filler, then sort and render.
package timeline

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// DefaultLocation stands in when no story location was provided.
const DefaultLocation = "the story setting"

// Event is a single dated entry in a story timeline. Events are
// immutable once generated; the only later transformation is a stable
// chronological sort.
type Event struct {
	Date Date
	Text string
}

// Generator assembles story timelines. It keeps the characters, the
// setting, and the story's year as session state; create one Generator
// per storytelling session. Not safe for concurrent use.
type Generator struct {
	rng        *rand.Rand
	characters []model.Character
	location   string
	period     string
	year       int
	style      RenderStyle
}

// Option configures a Generator.
type Option func(*Generator)

// WithLocation sets the location referenced by the introduction and
// conclusion events.
func WithLocation(location string) Option {
	return func(g *Generator) {
		if location != "" {
			g.location = location
		}
	}
}

// WithTimePeriod sets the time-period phrase used by the conclusion
// event.
func WithTimePeriod(period string) Option {
	return func(g *Generator) {
		if period != "" {
			g.period = period
		}
	}
}

// WithStyle selects the render style.
func WithStyle(style RenderStyle) Option {
	return func(g *Generator) { g.style = style }
}

// NewGenerator creates a Generator driven by the given PRNG. The story
// year is drawn once from 1800–1820 and reused for every date the
// Generator produces, keeping each timeline internally consistent.
func NewGenerator(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:      rng,
		location: DefaultLocation,
		period:   "this time",
		year:     1800 + rng.IntN(21),
		style:    StyleBoxed,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Year returns the Regency year assigned to this Generator.
func (g *Generator) Year() int { return g.year }

// SetCharacters replaces the characters consulted for significance
// matching and filler events.
func (g *Generator) SetCharacters(characters []model.Character) {
	g.characters = characters
}

// Generate renders a chronological timeline for the story. It never
// fails for well-formed inputs: unknown seasons fall back to spring,
// characters may be empty or lack names, and a story with no usable
// paragraphs still yields the introduction, conclusion, and filler
// entries.
func (g *Generator) Generate(story string, characters []model.Character, season string) string {
	g.SetCharacters(characters)
	return Render(g.Events(story, season), g.style)
}

// Events builds the sorted event list without rendering it.
func (g *Generator) Events(story, season string) []Event {
	ssn := SeasonFor(season)

	var paragraphs []string
	for _, line := range strings.Split(story, "\n") {
		if strings.TrimSpace(line) != "" {
			paragraphs = append(paragraphs, line)
		}
	}

	target := 5 + g.rng.IntN(3)
	selected := g.selectSignificant(paragraphs, target)

	var events []Event
	idx := 0 // paragraph-derived event index; drives the date cycle
	for _, paraIdx := range selected {
		text := extractEvent(paragraphs[paraIdx])
		if text == "" {
			continue
		}
		events = append(events, Event{
			Date: Date{Month: ssn.Months[idx%3], Day: (idx*7+5)%28 + 1, Year: g.year},
			Text: capEntry(text),
		})
		idx++
	}

	events = append(events, Event{
		Date: Date{Month: ssn.Months[0], Day: 1, Year: g.year, Abbreviated: true},
		Text: g.introText(),
	})
	events = append(events, Event{
		Date: Date{Month: ssn.Months[2], Day: 28, Year: g.year},
		Text: g.conclusionText(),
	})

	for _, filler := range g.AdditionalEvents(ssn, 1+g.rng.IntN(2)) {
		events = append(events, Event{
			Date: Date{Month: ssn.Months[g.rng.IntN(3)], Day: 1 + g.rng.IntN(28), Year: g.year},
			Text: capEntry(filler),
		})
	}

	// Sort within the season window so winter timelines keep the
	// introduction on December 1st rather than trailing the new year.
	slices.SortStableFunc(events, func(a, b Event) int {
		return ssn.compareDates(a.Date, b.Date)
	})
	return events
}

func (g *Generator) introText() string {
	protagonist := "The protagonist"
	if len(g.characters) > 0 && g.characters[0].Name != "" {
		protagonist = g.characters[0].Name
	}
	return capEntry(fmt.Sprintf("%s begins the journey into %s.", protagonist, g.location))
}

var conclusionTemplates = []string{
	"The events in %[1]s reach their conclusion.",
	"The story in %[1]s comes to a resolution.",
	"Our characters find resolution to their journey in %[1]s.",
	"The tale of %[2]s in %[1]s concludes.",
}

func (g *Generator) conclusionText() string {
	tmpl := conclusionTemplates[g.rng.IntN(len(conclusionTemplates))]
	return capEntry(fmt.Sprintf(tmpl, g.location, g.period))
}
