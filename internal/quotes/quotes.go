// Package quotes provides authentic Jane Austen quotations with
// provenance and contextual notes.
package quotes

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// Quote is a quotation with its source and background.
type Quote struct {
	Text    string `json:"text"`
	Source  string `json:"source"`
	Context string `json:"context"`
	Theme   string `json:"theme"`
}

var catalogue = []Quote{
	{
		Text:    "It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife.",
		Source:  "Pride and Prejudice (1813)",
		Context: "The famous opening line that ironically establishes the marriage theme while subtly mocking social expectations.",
		Theme:   "marriage",
	},
	{
		Text:    "I could easily forgive his pride, if he had not mortified mine.",
		Source:  "Pride and Prejudice (1813)",
		Context: "Elizabeth Bennet speaking about Mr. Darcy after their first meeting, highlighting the novel's exploration of pride as a character flaw.",
		Theme:   "pride",
	},
	{
		Text:    "In vain have I struggled. It will not do. My feelings will not be repressed. You must allow me to tell you how ardently I admire and love you.",
		Source:  "Pride and Prejudice (1813)",
		Context: "Mr. Darcy's first proposal to Elizabeth Bennet, showing his internal conflict between love and social considerations.",
		Theme:   "love",
	},
	{
		Text:    "For what do we live, but to make sport for our neighbours, and laugh at them in our turn?",
		Source:  "Pride and Prejudice (1813)",
		Context: "Mr. Bennet's cynical yet humorous philosophy on life, showing Austen's wit and social commentary.",
		Theme:   "society",
	},
	{
		Text:    "The more I know of the world, the more I am convinced that I shall never see a man whom I can really love.",
		Source:  "Sense and Sensibility (1811)",
		Context: "Marianne Dashwood expressing her romantic idealism, which will be challenged throughout the novel.",
		Theme:   "love",
	},
	{
		Text:    "Know your own happiness. You want nothing but patience - or give it a more fascinating name, call it hope.",
		Source:  "Sense and Sensibility (1811)",
		Context: "Mrs. Dashwood's advice, representing the novel's theme of finding a balance between emotional sensibility and rational sense.",
		Theme:   "wisdom",
	},
	{
		Text:    "I will be calm. I will be mistress of myself.",
		Source:  "Sense and Sensibility (1811)",
		Context: "Elinor Dashwood demonstrating her commitment to self-control and social propriety despite emotional turmoil.",
		Theme:   "self-control",
	},
	{
		Text:    "I may have lost my heart, but not my self-control.",
		Source:  "Emma (1815)",
		Context: "Emma's internal struggle between romantic feelings and maintaining her composure, showing Austen's focus on balance.",
		Theme:   "self-control",
	},
	{
		Text:    "Seldom, very seldom, does complete truth belong to any human disclosure; seldom can it happen that something is not a little disguised or a little mistaken.",
		Source:  "Emma (1815)",
		Context: "The narrator's insight on human communication, reflecting the novel's theme of misunderstanding and limited perception.",
		Theme:   "perception",
	},
	{
		Text:    "You pierce my soul. I am half agony, half hope. Tell me not that I am too late.",
		Source:  "Persuasion (1817)",
		Context: "Captain Wentworth's passionate letter to Anne Elliot, considered one of literature's most romantic declarations.",
		Theme:   "love",
	},
	{
		Text:    "All the privilege I claim for my own sex is that of loving longest, when existence or when hope is gone!",
		Source:  "Persuasion (1817)",
		Context: "Anne Elliot defending women's constancy in love during a discussion about literature, reflecting her own situation.",
		Theme:   "gender",
	},
	{
		Text:    "We have all a better guide in ourselves, if we would attend to it, than any other person can be.",
		Source:  "Mansfield Park (1814)",
		Context: "Fanny Price's quiet conviction about conscience and moral judgment, central to her role in the novel.",
		Theme:   "wisdom",
	},
}

// Picker selects quotes using an injected PRNG.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a quote Picker driven by the given PRNG.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Random returns any quote from the catalogue.
func (p *Picker) Random() Quote {
	return catalogue[p.rng.IntN(len(catalogue))]
}

// ByTheme returns a random quote matching the theme
// (case-insensitive). The second return is false when the theme has no
// quotes; callers usually fall back to Random.
func (p *Picker) ByTheme(theme string) (Quote, bool) {
	theme = strings.ToLower(strings.TrimSpace(theme))
	var matching []Quote
	for _, q := range catalogue {
		if q.Theme == theme {
			matching = append(matching, q)
		}
	}
	if len(matching) == 0 {
		return Quote{}, false
	}
	return matching[p.rng.IntN(len(matching))], true
}

// Themes returns the distinct quote themes, sorted.
func Themes() []string {
	seen := map[string]bool{}
	var themes []string
	for _, q := range catalogue {
		if !seen[q.Theme] {
			seen[q.Theme] = true
			themes = append(themes, q.Theme)
		}
	}
	sort.Strings(themes)
	return themes
}

// Sources returns the distinct source works, sorted.
func Sources() []string {
	seen := map[string]bool{}
	var sources []string
	for _, q := range catalogue {
		if !seen[q.Source] {
			seen[q.Source] = true
			sources = append(sources, q.Source)
		}
	}
	sort.Strings(sources)
	return sources
}
