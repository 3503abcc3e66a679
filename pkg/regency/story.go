package regency

import (
	"time"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// Character is a generated Regency-era character.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Character struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	SocialClass string `json:"social_class"`
	Occupation  string `json:"occupation"`
	Personality string `json:"personality"`
	Backstory   string `json:"backstory,omitempty"`
	Role        string `json:"role"` // "protagonist" or "supporting"
}

// Settings describe where and when a story takes place.
type Settings struct {
	Location   string `json:"location"`
	Season     string `json:"season"`
	TimePeriod string `json:"time_period"`
}

// Story is a finished storytelling result.
type Story struct {
	ID         string      `json:"id,omitempty"`
	Title      string      `json:"title"`
	Theme      string      `json:"theme"`
	Settings   Settings    `json:"settings"`
	Characters []Character `json:"characters,omitempty"`
	Text       string      `json:"content"`
	Timeline   string      `json:"timeline,omitempty"`
	Quote      string      `json:"quote,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Quote is a quotation with its source and background.
type Quote struct {
	Text    string `json:"text"`
	Source  string `json:"source"`
	Context string `json:"context"`
	Theme   string `json:"theme"`
}

func storyFromModel(s model.Story) Story {
	out := Story{
		ID:        s.ID,
		Title:     s.Title,
		Theme:     s.Theme,
		Settings:  Settings(s.Settings),
		Text:      s.Text,
		Timeline:  s.Timeline,
		Quote:     s.Quote,
		CreatedAt: s.CreatedAt,
	}
	for _, c := range s.Characters {
		out.Characters = append(out.Characters, Character(c))
	}
	return out
}
