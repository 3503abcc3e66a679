// Package storyteller assembles the character, story, timeline and
// quote generators into one session that produces finished stories.
package storyteller

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/not-lavanya/janeaustenstoryteller/internal/archive"
	"github.com/not-lavanya/janeaustenstoryteller/internal/character"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export"
	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
	"github.com/not-lavanya/janeaustenstoryteller/internal/quotes"
	"github.com/not-lavanya/janeaustenstoryteller/internal/story"
	"github.com/not-lavanya/janeaustenstoryteller/internal/timeline"
)

const (
	defaultCharacters = 3
	maxCharacters     = 6
	defaultPeriod     = "the Regency era"
)

// Params select what kind of story a session tells. Zero values are
// filled with sensible (randomised) defaults.
type Params struct {
	Theme         string
	Location      string
	Season        string
	TimePeriod    string
	Provider      string
	NumCharacters int
	Style         timeline.RenderStyle
	Backstories   bool
}

// Option configures a Session.
type Option func(*Session)

// WithExporter sends every finished story to the given exporter.
func WithExporter(e export.Exporter) Option {
	return func(s *Session) { s.exporter = e }
}

// WithArchive saves every finished story to the given archive.
func WithArchive(store *archive.Store) Option {
	return func(s *Session) { s.store = store }
}

// Session produces stories. All randomness flows from the single
// injected PRNG, so a fixed seed reproduces an identical story.
type Session struct {
	rng        *rand.Rand
	characters *character.Generator
	quotes     *quotes.Picker
	exporter   export.Exporter
	store      *archive.Store
}

// New creates a Session driven by the given PRNG.
func New(rng *rand.Rand, opts ...Option) *Session {
	s := &Session{
		rng:        rng,
		characters: character.NewGenerator(rng),
		quotes:     quotes.NewPicker(rng),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tell generates one complete story: cast, narrative, timeline and
// closing quote. The story is archived and exported when the session
// was configured with those destinations.
func (s *Session) Tell(ctx context.Context, p Params) (model.Story, error) {
	p = s.fill(p)

	settings := model.Settings{
		Location:   p.Location,
		Season:     p.Season,
		TimePeriod: p.TimePeriod,
	}
	cast := s.characters.CreateMany(p.NumCharacters)
	if !p.Backstories {
		for i := range cast {
			cast[i].Backstory = ""
		}
	}

	ctor, err := story.Get(p.Provider)
	if err != nil {
		return model.Story{}, fmt.Errorf("storyteller: %w", err)
	}
	text, err := ctor(s.rng).Generate(p.Theme, cast, settings)
	if err != nil {
		return model.Story{}, fmt.Errorf("storyteller: generate story: %w", err)
	}

	tg := timeline.NewGenerator(s.rng,
		timeline.WithLocation(p.Location),
		timeline.WithTimePeriod(p.TimePeriod),
		timeline.WithStyle(p.Style),
	)
	tl := tg.Generate(text, cast, p.Season)

	result := model.Story{
		Title:      story.Title(settings),
		Theme:      p.Theme,
		Settings:   settings,
		Characters: cast,
		Text:       text,
		Timeline:   tl,
		Quote:      s.quoteFor(p.Theme).Framed(true),
		CreatedAt:  time.Now(),
	}

	if s.store != nil {
		result, err = s.store.Save(ctx, result)
		if err != nil {
			return model.Story{}, fmt.Errorf("storyteller: %w", err)
		}
		slog.Debug("story archived", "id", result.ID, "title", result.Title)
	}
	if s.exporter != nil {
		if err := s.exporter.Export(ctx, result); err != nil {
			return model.Story{}, fmt.Errorf("storyteller: %w", err)
		}
	}

	slog.Info("story told",
		"title", result.Title,
		"theme", result.Theme,
		"provider", p.Provider,
		"words", result.WordCount(),
	)
	return result, nil
}

// fill replaces zero Params with defaults, randomising the creative
// choices the caller left open.
func (s *Session) fill(p Params) Params {
	if p.Theme == "" {
		p.Theme = story.RandomTheme(s.rng)
	}
	if p.Location == "" {
		p.Location = story.RandomLocation(s.rng)
	}
	if p.Season == "" {
		names := timeline.SeasonNames()
		p.Season = names[s.rng.IntN(len(names))]
	}
	if p.TimePeriod == "" {
		p.TimePeriod = defaultPeriod
	}
	if p.Provider == "" {
		p.Provider = "classic"
	}
	if p.NumCharacters <= 0 {
		p.NumCharacters = defaultCharacters
	}
	if p.NumCharacters > maxCharacters {
		p.NumCharacters = maxCharacters
	}
	return p
}

// quoteFor picks a quotation whose theme matches a word of the story
// theme, falling back to any quote.
func (s *Session) quoteFor(theme string) quotes.Quote {
	for _, word := range strings.Fields(strings.ToLower(theme)) {
		word = strings.Trim(word, ",.&")
		if q, ok := s.quotes.ByTheme(word); ok {
			return q
		}
	}
	return s.quotes.Random()
}
