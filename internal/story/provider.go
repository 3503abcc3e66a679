// Package story assembles Regency narratives from theme templates and a
// generated cast.
package story

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// Provider produces a story for a theme, cast, and setting.
type Provider interface {
	// Themes lists the theme names this provider can tell.
	Themes() []string

	// Generate assembles the story text. An unknown theme falls back to
	// a minimal narrative rather than failing; an empty cast is an
	// error.
	Generate(theme string, characters []model.Character, settings model.Settings) (string, error)
}

// Constructor creates a Provider driven by the given PRNG.
type Constructor func(rng *rand.Rand) Provider

var registry = map[string]Constructor{}

// Register adds a provider constructor under the given name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the provider constructor for the given name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown story provider: %s", name)
	}
	return ctor, nil
}

// Providers returns the registered provider names, sorted.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var titleCaser = cases.Title(language.English)

// Title builds a display title for a story from its settings, e.g.
// "A Summer Tale at Pemberley".
func Title(settings model.Settings) string {
	season := titleCaser.String(strings.ToLower(settings.Season))
	if season == "" {
		season = "Regency"
	}
	location := settings.Location
	if location == "" {
		location = "an English Estate"
	}
	article := "A"
	if strings.ContainsRune("AEIOU", rune(season[0])) {
		article = "An"
	}
	return fmt.Sprintf("%s %s Tale at %s", article, season, location)
}

// DisplayName renders a provider name for menus ("classic" → "Classic").
func DisplayName(provider string) string {
	return titleCaser.String(provider)
}
