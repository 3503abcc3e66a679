package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/not-lavanya/janeaustenstoryteller/internal/export"
	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

const (
	defaultBufferSize   = 16
	defaultDrainTimeout = 5 * time.Second
)

// Option configures an Async wrapper.
type Option func(*Async)

// WithBufferSize sets the channel buffer capacity. Default: 16.
func WithBufferSize(n int) Option {
	return func(a *Async) { a.bufSize = n }
}

// WithOnError sets the callback invoked when the inner exporter's
// Export fails. Default: logs a warning via slog.
func WithOnError(f func(error)) Option {
	return func(a *Async) { a.errFunc = f }
}

// Async decouples story production from exporting via a buffered
// channel. The session pushes into the channel; a background goroutine
// drains it to the wrapped exporter. Errors from the inner exporter are
// passed to errFunc rather than propagated to the caller, so a slow or
// failing destination never stalls the interactive session.
type Async struct {
	inner     export.Exporter
	ch        chan model.Story
	done      chan struct{}
	errFunc   func(error)
	bufSize   int
	closeOnce sync.Once
}

// New wraps an export.Exporter in an async channel-based writer.
// The background drain goroutine starts immediately.
func New(inner export.Exporter, opts ...Option) *Async {
	a := &Async{
		inner:   inner,
		bufSize: defaultBufferSize,
		errFunc: func(err error) { slog.Warn("async export error", "error", err) },
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ch = make(chan model.Story, a.bufSize)
	a.done = make(chan struct{})
	go a.drain()
	return a
}

// Export sends the story into the channel, blocking if the channel is
// full (backpressure).
func (a *Async) Export(_ context.Context, story model.Story) error {
	a.ch <- story
	return nil
}

// Close closes the channel, waits for the drain goroutine to finish
// (with a timeout), then closes the inner exporter.
func (a *Async) Close() error {
	var err error
	a.closeOnce.Do(func() {
		close(a.ch)
		select {
		case <-a.done:
		case <-time.After(defaultDrainTimeout):
			slog.Warn("async export drain timed out")
		}
		err = a.inner.Close()
	})
	return err
}

// drain reads stories from the channel and hands them to the inner
// exporter.
func (a *Async) drain() {
	defer close(a.done)
	for story := range a.ch {
		if err := a.inner.Export(context.Background(), story); err != nil {
			a.errFunc(err)
		}
	}
}
