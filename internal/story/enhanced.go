package story

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

func init() {
	Register("enhanced", func(rng *rand.Rand) Provider {
		return &enhancedProvider{classic: &classicProvider{rng: rng}, rng: rng}
	})
}

// enhancedProvider wraps the classic templates with a cast introduction,
// theme-appropriate social commentary, and a reflective conclusion.
type enhancedProvider struct {
	classic *classicProvider
	rng     *rand.Rand
}

func (p *enhancedProvider) Themes() []string {
	return p.classic.Themes()
}

func (p *enhancedProvider) Generate(theme string, characters []model.Character, settings model.Settings) (string, error) {
	body, err := p.classic.Generate(theme, characters, settings)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "In %s, during a %s at %s, society turns its attention to new arrivals and old acquaintances.\n\n",
		settings.TimePeriod, settings.Season, settings.Location)

	b.WriteString("Our cast of characters includes:\n")
	for i, c := range characters {
		role := "a supporting figure in our tale"
		if i == 0 {
			role = "our protagonist"
		}
		fmt.Fprintf(&b, "- %s: a %s %s, %s, %s\n", c.Name, c.Personality, c.SocialClass, c.Occupation, role)
	}
	b.WriteString("\n")

	b.WriteString(body)

	for _, extra := range p.commentary(theme, settings) {
		b.WriteString("\n\n")
		b.WriteString(extra)
	}

	fmt.Fprintf(&b, "\n\nAs the %s days pass at %s, the true character of each person is gradually revealed, demonstrating that in %s, just as today, the human heart remains a complex mystery, guided by both reason and sentiment.",
		settings.Season, settings.Location, settings.TimePeriod)

	return b.String(), nil
}

// commentary returns theme-flavored narrative asides.
func (p *enhancedProvider) commentary(theme string, settings model.Settings) []string {
	lower := strings.ToLower(theme)
	var extras []string

	if strings.Contains(lower, "courtship") || strings.Contains(lower, "marriage") || strings.Contains(lower, "love") {
		extras = append(extras, fmt.Sprintf(
			"The social gatherings at %s have become the talk of the county. Every ball and dinner party carries the weight of futures being decided over tea and dance cards.",
			settings.Location))
	}
	if strings.Contains(lower, "intrigue") || strings.Contains(lower, "secret") || strings.Contains(lower, "honor") {
		extras = append(extras, fmt.Sprintf(
			"Behind the elegant facades of %s, whispers and secrets pass from drawing room to drawing room, and a reputation once questioned is not easily restored.",
			settings.Location))
	}
	if strings.Contains(lower, "inheritance") || strings.Contains(lower, "provincial") {
		extras = append(extras, fmt.Sprintf(
			"The letter that arrived at %s has changed everything. Fortune, once distant, now sits at the table and studies its company.",
			settings.Location))
	}
	return extras
}
