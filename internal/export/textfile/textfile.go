// Package textfile exports stories as plain-text documents on disk.
package textfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/not-lavanya/janeaustenstoryteller/internal/export"
	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a text file Exporter.
type Option func(*Exporter)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(e *Exporter) { e.bufSize = bytes }
}

// Exporter appends formatted stories to a text file with buffered I/O.
// Multiple stories in one session land in the same file, separated by a
// blank line.
type Exporter struct {
	w       *bufio.Writer
	f       *os.File
	mu      sync.Mutex
	path    string
	bufSize int
}

// New creates a text file exporter writing to the given path. Parent
// directories are created as needed.
func New(path string, opts ...Option) (*Exporter, error) {
	e := &Exporter{path: path, bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(e)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("textfile export: mkdir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("textfile export: open %s: %w", path, err)
	}
	e.f = f
	e.w = bufio.NewWriterSize(f, e.bufSize)
	return e, nil
}

// Export appends the formatted story to the file.
func (e *Exporter) Export(_ context.Context, story model.Story) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.w.WriteString(export.FormatText(story) + "\n"); err != nil {
		return fmt.Errorf("textfile export: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (e *Exporter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.w.Flush(); err != nil {
		e.f.Close()
		return fmt.Errorf("textfile export: flush: %w", err)
	}
	return e.f.Close()
}
