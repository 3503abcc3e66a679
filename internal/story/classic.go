package story

import (
	"errors"
	"math/rand/v2"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

func init() {
	Register("classic", func(rng *rand.Rand) Provider {
		return &classicProvider{rng: rng}
	})
}

// classicProvider fills the theme templates directly, with no
// embellishment.
type classicProvider struct {
	rng *rand.Rand
}

// fallbackTemplate is used when the requested theme is unknown.
const fallbackTemplate = `{protagonist_name}, a {protagonist_social_class} who is {protagonist_personality}, finds adventure and romance in {location} during {season} in {time_period}.`

func (p *classicProvider) Themes() []string {
	out := make([]string, len(themeNames))
	copy(out, themeNames)
	return out
}

func (p *classicProvider) Generate(theme string, characters []model.Character, settings model.Settings) (string, error) {
	if len(characters) == 0 {
		return "", errors.New("story: at least one character required")
	}
	tmpl, ok := templates[theme]
	if !ok {
		tmpl = fallbackTemplate
	}
	return expand(tmpl, characters, settings), nil
}

// RandomTheme picks one of the available themes.
func RandomTheme(rng *rand.Rand) string {
	return themeNames[rng.IntN(len(themeNames))]
}

// RandomLocation picks one of the default locations.
func RandomLocation(rng *rand.Rand) string {
	return DefaultLocations[rng.IntN(len(DefaultLocations))]
}
