package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.json")
	e, err := New(path, false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	want := model.Story{
		Title:    "A Regency Tale at an English Estate",
		Theme:    "Inheritance and Duty",
		Settings: model.Settings{Location: "Pemberley Estate", Season: "autumn", TimePeriod: "the Regency era"},
		Characters: []model.Character{
			{Name: "Anne Elliot", Gender: "female", Role: model.RoleProtagonist},
		},
		Text:     "The estate passed to a distant cousin.",
		Timeline: "┌─┐",
	}
	if err := e.Export(context.Background(), want); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var got struct {
		model.Story
		WordCount int `json:"word_count"`
	}
	if err := json.NewDecoder(f).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.WordCount != want.WordCount() {
		t.Fatalf("word_count = %d, want %d", got.WordCount, want.WordCount())
	}
	if got.Title != want.Title || got.Theme != want.Theme || got.Text != want.Text {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Characters) != 1 || got.Characters[0].Name != "Anne Elliot" {
		t.Fatalf("cast not preserved: %+v", got.Characters)
	}
}

func TestAppendsOneDocumentPerStory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.json")
	e, err := New(path, false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()
	for _, title := range []string{"One", "Two", "Three"} {
		if err := e.Export(ctx, model.Story{Title: title}); err != nil {
			t.Fatalf("export %s: %v", title, err)
		}
	}
	e.Close()

	f, _ := os.Open(path)
	defer f.Close()
	dec := json.NewDecoder(f)
	var count int
	for dec.More() {
		var s model.Story
		if err := dec.Decode(&s); err != nil {
			t.Fatalf("decode %d: %v", count, err)
		}
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 documents, got %d", count)
	}
}
