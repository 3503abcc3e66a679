// Package jsonfile exports stories as newline-delimited JSON on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// Exporter appends one JSON document per story to a file.
type Exporter struct {
	f      *os.File
	enc    *json.Encoder
	mu     sync.Mutex
	pretty bool
}

// New creates a JSON file exporter writing to the given path. Parent
// directories are created as needed. With pretty set, each document is
// indented.
func New(path string, pretty bool) (*Exporter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("jsonfile export: mkdir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("jsonfile export: open %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Exporter{f: f, enc: enc, pretty: pretty}, nil
}

// record is the on-disk document: the story plus derived metadata.
type record struct {
	model.Story
	WordCount int `json:"word_count"`
}

// Export JSON-encodes the story and appends it to the file.
func (e *Exporter) Export(_ context.Context, story model.Story) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(record{Story: story, WordCount: story.WordCount()}); err != nil {
		return fmt.Errorf("jsonfile export: encode: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (e *Exporter) Close() error {
	return e.f.Close()
}
