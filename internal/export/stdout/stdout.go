// Package stdout exports stories to a terminal, optionally with
// quill-style animation.
package stdout

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/not-lavanya/janeaustenstoryteller/internal/animate"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export"
	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// Option configures a stdout Exporter.
type Option func(*Exporter)

// WithWriter redirects output away from os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(e *Exporter) { e.w = w }
}

// WithDelay enables rune-at-a-time animation with the given per-rune
// delay. Zero (the default) prints instantly.
func WithDelay(d time.Duration) Option {
	return func(e *Exporter) { e.delay = d }
}

// Exporter prints formatted stories to a terminal.
type Exporter struct {
	w     io.Writer
	delay time.Duration
}

// New creates a stdout exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{w: os.Stdout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the formatted story, animated when a delay is set.
func (e *Exporter) Export(_ context.Context, story model.Story) error {
	text := export.FormatText(story)
	if e.delay > 0 {
		if err := animate.New(e.w, e.delay).Animate(text); err != nil {
			return fmt.Errorf("stdout export: %w", err)
		}
		return nil
	}
	if _, err := io.WriteString(e.w, text); err != nil {
		return fmt.Errorf("stdout export: %w", err)
	}
	return nil
}

func (e *Exporter) Close() error {
	return nil
}
