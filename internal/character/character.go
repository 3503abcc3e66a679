// Package character generates Regency-era characters from fixed trait
// tables.
package character

import (
	"math/rand/v2"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// genderedOccupationChance is the probability a character receives a
// gender-specific occupation instead of a neutral one.
const genderedOccupationChance = 0.7

// Generator creates characters using an injected PRNG.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a character Generator driven by the given PRNG.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Name generates a typical Regency name for the given gender
// ("male" or "female"); any other value picks a gender at random.
func (g *Generator) Name(gender string) string {
	pool, ok := firstNames[gender]
	if !ok {
		pool = firstNames[g.randomGender()]
	}
	return g.pick(pool) + " " + g.pick(lastNames)
}

// Create generates one character. An empty gender is chosen at random;
// a non-empty customName overrides the generated name.
func (g *Generator) Create(gender, customName string, includeBackstory bool) model.Character {
	if _, ok := firstNames[gender]; !ok {
		gender = g.randomGender()
	}

	name := customName
	if name == "" {
		name = g.pick(firstNames[gender]) + " " + g.pick(lastNames)
	}

	occupationPool := occupations["neutral"]
	if g.rng.Float64() < genderedOccupationChance {
		occupationPool = occupations[gender]
	}

	c := model.Character{
		Name:        name,
		Gender:      gender,
		SocialClass: g.pick(socialClasses[g.pick(classCategories)]),
		Occupation:  g.pick(occupationPool),
		Personality: g.pick(personalityTraits[g.pick(traitCategories)]),
	}
	if includeBackstory {
		c.Backstory = g.pick(backstories)
	}
	return c
}

// CreateMany generates a cast of n characters. The first is marked as
// the protagonist, the rest as supporting characters.
func (g *Generator) CreateMany(n int) []model.Character {
	if n <= 0 {
		return nil
	}
	cast := make([]model.Character, n)
	for i := range cast {
		cast[i] = g.Create("", "", true)
		if i == 0 {
			cast[i].Role = model.RoleProtagonist
		} else {
			cast[i].Role = model.RoleSupporting
		}
	}
	return cast
}

func (g *Generator) randomGender() string {
	if g.rng.IntN(2) == 0 {
		return "male"
	}
	return "female"
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}
