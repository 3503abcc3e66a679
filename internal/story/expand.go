package story

import (
	"strings"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// expand fills a template's {placeholder} keys from the cast and
// settings. The protagonist is characters[0]; character1 and character2
// reuse the last available cast member when the cast is small, so every
// template renders without gaps.
func expand(template string, characters []model.Character, settings model.Settings) string {
	at := func(i int) model.Character {
		if i >= len(characters) {
			i = len(characters) - 1
		}
		return characters[i]
	}
	protagonist, c1, c2 := at(0), at(1), at(2)

	pairs := []string{
		"{protagonist_name}", protagonist.Name,
		"{protagonist_social_class}", protagonist.SocialClass,
		"{protagonist_personality}", protagonist.Personality,
		"{protagonist_occupation}", protagonist.Occupation,
		"{character1_name}", c1.Name,
		"{character1_social_class}", c1.SocialClass,
		"{character1_personality}", c1.Personality,
		"{character1_occupation}", c1.Occupation,
		"{character2_name}", c2.Name,
		"{character2_social_class}", c2.SocialClass,
		"{character2_personality}", c2.Personality,
		"{character2_occupation}", c2.Occupation,
		"{location}", settings.Location,
		"{season}", settings.Season,
		"{time_period}", settings.TimePeriod,
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
