package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "austen", "archive.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testStory(title string, created time.Time) model.Story {
	return model.Story{
		Title:    title,
		Theme:    "Love and Courtship",
		Settings: model.Settings{Location: "Bath", Season: "summer", TimePeriod: "the Regency era"},
		Characters: []model.Character{
			{Name: "Elizabeth Bennet", Gender: "female", Role: model.RoleProtagonist},
			{Name: "Mr. Darcy", Gender: "male", Role: model.RoleSupporting},
		},
		Text:      "She walked to the assembly rooms and met an old acquaintance.",
		Timeline:  "┌─┐ timeline └─┘",
		Quote:     "\"I could easily forgive his pride.\"",
		CreatedAt: created,
	}
}

func TestSaveAssignsID(t *testing.T) {
	s := openTestStore(t)
	saved, err := s.Save(context.Background(), testStory("A Tale", time.Time{}))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected generated id")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := testStory("A Summer Tale at Bath", time.Date(1813, 6, 1, 12, 0, 0, 0, time.UTC))
	saved, err := s.Save(ctx, want)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != want.Title || got.Theme != want.Theme || got.Text != want.Text {
		t.Fatalf("story fields lost: %+v", got)
	}
	if got.Settings != want.Settings {
		t.Fatalf("settings lost: %+v", got.Settings)
	}
	if len(got.Characters) != 2 || got.Characters[0].Name != "Elizabeth Bennet" {
		t.Fatalf("cast lost: %+v", got.Characters)
	}
	if got.Timeline != want.Timeline || got.Quote != want.Quote {
		t.Fatal("timeline or quote block lost")
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("created at %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveOverwritesExistingID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, testStory("Original Title", time.Time{}))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	saved.Title = "Revised Title"
	if _, err := s.Save(ctx, saved); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Revised Title" {
		t.Fatalf("title = %q", got.Title)
	}

	list, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 archived story, got %d", len(list))
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(1813, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"Oldest", "Middle", "Newest"} {
		if _, err := s.Save(ctx, testStory(title, base.AddDate(0, i, 0))); err != nil {
			t.Fatalf("save %s: %v", title, err)
		}
	}

	list, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(list))
	}
	if list[0].Title != "Newest" || list[2].Title != "Oldest" {
		t.Fatalf("wrong order: %v, %v, %v", list[0].Title, list[1].Title, list[2].Title)
	}
	if list[0].WordCount == 0 {
		t.Fatal("word count not recorded")
	}
}

func TestListLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(1813, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if _, err := s.Save(ctx, testStory("Tale", base.AddDate(0, 0, i))); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	list, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(list))
	}
}

func TestSearch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inheritance := testStory("The Disputed Inheritance", time.Date(1813, 3, 1, 0, 0, 0, 0, time.UTC))
	inheritance.Text = "The estate passed to a distant cousin under the entail."
	if _, err := s.Save(ctx, inheritance); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := s.Save(ctx, testStory("A Summer Tale", time.Date(1813, 4, 1, 0, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("save: %v", err)
	}

	hits, err := s.Search(ctx, "entail", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].Title != "The Disputed Inheritance" {
		t.Fatalf("unexpected hits: %+v", hits)
	}

	none, err := s.Search(ctx, "dragon", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no hits, got %d", len(none))
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, testStory("Ephemeral Tale", time.Time{}))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeat delete, got %v", err)
	}
}
