package regency

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/not-lavanya/janeaustenstoryteller/internal/character"
	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
	"github.com/not-lavanya/janeaustenstoryteller/internal/quotes"
	"github.com/not-lavanya/janeaustenstoryteller/internal/random"
	"github.com/not-lavanya/janeaustenstoryteller/internal/storyteller"
	"github.com/not-lavanya/janeaustenstoryteller/internal/timeline"
)

// Storyteller composes Regency-era stories. Create once and reuse;
// every call advances the same pseudo-random stream.
type Storyteller struct {
	rng     *rand.Rand
	session *storyteller.Session
	picker  *quotes.Picker
	opts    options
}

// New creates a Storyteller.
func New(opts ...Option) (*Storyteller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seed := o.seed
	if !o.seedSet {
		var err error
		seed, err = random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("regency: %w", err)
		}
	}
	rng := random.New(seed)

	return &Storyteller{
		rng:     rng,
		session: storyteller.New(rng),
		picker:  quotes.NewPicker(rng),
		opts:    o,
	}, nil
}

// Tell composes one complete story. Empty theme, location or season
// are chosen at random.
func (s *Storyteller) Tell(ctx context.Context, theme, location, season string) (Story, error) {
	result, err := s.session.Tell(ctx, storyteller.Params{
		Theme:         theme,
		Location:      location,
		Season:        season,
		TimePeriod:    s.opts.timePeriod,
		Provider:      s.opts.provider,
		NumCharacters: s.opts.characters,
		Backstories:   s.opts.backstories,
		Style:         timeline.ParseStyle(s.opts.style),
	})
	if err != nil {
		return Story{}, err
	}
	return storyFromModel(result), nil
}

// Timeline builds a rendered timeline for existing story text. The
// names weight which paragraphs count as significant.
func (s *Storyteller) Timeline(text string, names []string, season string) string {
	cast := make([]model.Character, len(names))
	for i, name := range names {
		cast[i] = model.Character{Name: name}
	}

	var opts []timeline.Option
	if s.opts.timePeriod != "" {
		opts = append(opts, timeline.WithTimePeriod(s.opts.timePeriod))
	}
	opts = append(opts, timeline.WithStyle(timeline.ParseStyle(s.opts.style)))

	return timeline.NewGenerator(s.rng, opts...).Generate(text, cast, season)
}

// Characters generates a cast of n characters, the first marked as
// the protagonist.
func (s *Storyteller) Characters(n int) []Character {
	var out []Character
	for _, c := range character.NewGenerator(s.rng).CreateMany(n) {
		out = append(out, Character(c))
	}
	return out
}

// QuoteByTheme returns a quotation on the given theme. The second
// return is false when the theme has no quotes.
func (s *Storyteller) QuoteByTheme(theme string) (Quote, bool) {
	q, ok := s.picker.ByTheme(theme)
	return Quote(q), ok
}

// RandomQuote returns any quotation from the catalogue.
func (s *Storyteller) RandomQuote() Quote {
	return Quote(s.picker.Random())
}

// QuoteThemes lists the themes the quote catalogue covers.
func QuoteThemes() []string {
	return quotes.Themes()
}
