package async

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

type mockExporter struct {
	mu      sync.Mutex
	stories []model.Story
	closed  bool
	err     error
}

func (m *mockExporter) Export(_ context.Context, story model.Story) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stories = append(m.stories, story)
	return m.err
}

func (m *mockExporter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func TestDrainsBeforeClose(t *testing.T) {
	inner := &mockExporter{}
	a := New(inner)

	ctx := context.Background()
	for _, title := range []string{"One", "Two", "Three"} {
		if err := a.Export(ctx, model.Story{Title: title}); err != nil {
			t.Fatalf("export: %v", err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	inner.mu.Lock()
	defer inner.mu.Unlock()
	if len(inner.stories) != 3 {
		t.Fatalf("expected 3 stories drained, got %d", len(inner.stories))
	}
	if !inner.closed {
		t.Fatal("inner exporter not closed")
	}
}

func TestInnerErrorsGoToCallback(t *testing.T) {
	inner := &mockExporter{err: errors.New("archive unavailable")}
	var mu sync.Mutex
	var seen []error
	a := New(inner, WithOnError(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, err)
	}))

	if err := a.Export(context.Background(), model.Story{Title: "Doomed"}); err != nil {
		t.Fatalf("export should not surface inner errors: %v", err)
	}
	a.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 1 {
		t.Fatalf("expected 1 callback error, got %d", len(seen))
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	a := New(&mockExporter{})
	if err := a.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
