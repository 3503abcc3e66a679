// Package animate writes text to a terminal with quill-style pacing:
// one rune at a time, lingering at sentence breaks. A zero delay
// renders instantly, which is how the tests and non-interactive exports
// use it.
package animate

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Pacing presets, expressed as per-rune delay.
const (
	SpeedSlow     = 60 * time.Millisecond
	SpeedStandard = 30 * time.Millisecond
	SpeedFast     = 10 * time.Millisecond
)

// sentencePauseFactor is how much longer the writer lingers after
// sentence-ending punctuation.
const sentencePauseFactor = 8

// clausePauseFactor is the lighter pause after commas and semicolons.
const clausePauseFactor = 3

// Writer animates text onto an io.Writer.
type Writer struct {
	w     io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

// New creates a Writer with the given per-rune delay. A delay of zero
// disables all pacing.
func New(w io.Writer, delay time.Duration) *Writer {
	return &Writer{w: w, delay: delay, sleep: time.Sleep}
}

// Animate writes the text rune by rune, pausing at punctuation, and
// ends without a trailing newline. The written bytes are always exactly
// the input text regardless of pacing.
func (a *Writer) Animate(text string) error {
	for _, r := range text {
		if _, err := io.WriteString(a.w, string(r)); err != nil {
			return fmt.Errorf("animate: write: %w", err)
		}
		a.pause(r)
	}
	return nil
}

// Line animates the text followed by a newline.
func (a *Writer) Line(text string) error {
	if err := a.Animate(text); err != nil {
		return err
	}
	if _, err := io.WriteString(a.w, "\n"); err != nil {
		return fmt.Errorf("animate: write: %w", err)
	}
	return nil
}

// Heading writes a decorated chapter-style heading, animated.
func (a *Writer) Heading(title string) error {
	rule := strings.Repeat("~", len(title)+8)
	for _, line := range []string{rule, "~*~ " + title + " ~*~", rule} {
		if err := a.Line(line); err != nil {
			return err
		}
	}
	return nil
}

// Divider writes a plain scene divider, animated.
func (a *Writer) Divider() error {
	return a.Line(strings.Repeat("-", 40))
}

func (a *Writer) pause(r rune) {
	if a.delay <= 0 {
		return
	}
	switch r {
	case '.', '!', '?':
		a.sleep(a.delay * sentencePauseFactor)
	case ',', ';', ':':
		a.sleep(a.delay * clausePauseFactor)
	default:
		a.sleep(a.delay)
	}
}
