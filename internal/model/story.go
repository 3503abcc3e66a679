package model

import (
	"strings"
	"time"
)

// Settings describe where and when a story takes place.
type Settings struct {
	Location   string `json:"location" yaml:"location"`
	Season     string `json:"season" yaml:"season"`
	TimePeriod string `json:"time_period" yaml:"time_period"`
}

// Story is the assembled output of one storytelling session.
// Timeline and Quote are pre-rendered text blocks; exporters embed them
// verbatim.
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

// WordCount returns the number of whitespace-separated words in the
// story text.
func (s Story) WordCount() int {
	return len(strings.Fields(s.Text))
}

// Protagonist returns the lead character, or a zero Character when the
// cast is empty.
func (s Story) Protagonist() Character {
	if len(s.Characters) == 0 {
		return Character{}
	}
	return s.Characters[0]
}
