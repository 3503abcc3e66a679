package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// mockExporter records calls for test assertions.
type mockExporter struct {
	stories []model.Story
	closed  bool
	err     error // if set, Export and Close return this error
}

func (m *mockExporter) Export(_ context.Context, story model.Story) error {
	m.stories = append(m.stories, story)
	return m.err
}

func (m *mockExporter) Close() error {
	m.closed = true
	return m.err
}

func TestFanOutDeliversToAll(t *testing.T) {
	a := &mockExporter{}
	b := &mockExporter{}
	c := &mockExporter{}
	m := New(a, b, c)

	story := model.Story{Title: "A Tale for Everyone"}
	if err := m.Export(context.Background(), story); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, e := range []*mockExporter{a, b, c} {
		if len(e.stories) != 1 || e.stories[0].Title != story.Title {
			t.Fatalf("exporter %d did not receive the story", i)
		}
	}
}

func TestFailureDoesNotBlockOthers(t *testing.T) {
	failing := &mockExporter{err: errors.New("disk full")}
	healthy := &mockExporter{}
	m := New(failing, healthy)

	err := m.Export(context.Background(), model.Story{Title: "Persistent Tale"})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if len(healthy.stories) != 1 {
		t.Fatal("healthy exporter should still receive the story")
	}
}

func TestCloseClosesAll(t *testing.T) {
	a := &mockExporter{}
	b := &mockExporter{err: errors.New("close failed")}
	m := New(a, b)

	if err := m.Close(); err == nil {
		t.Fatal("expected close error to propagate")
	}
	if !a.closed || !b.closed {
		t.Fatal("all exporters should be closed")
	}
}
