// Package archive persists finished stories in a local SQLite
// database so past sessions can be listed, reread and searched.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// ErrNotFound is returned when no archived story has the requested id.
var ErrNotFound = errors.New("archive: story not found")

// Summary is the listing view of an archived story.
type Summary struct {
	ID        string
	Title     string
	Theme     string
	Location  string
	Season    string
	WordCount int
	CreatedAt time.Time
}

// Store is a SQLite-backed story archive.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates (or reopens) the archive at the given path. Parent
// directories are created as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("archive: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS stories (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			theme       TEXT NOT NULL,
			location    TEXT NOT NULL,
			season      TEXT NOT NULL,
			time_period TEXT NOT NULL,
			characters  TEXT,
			content     TEXT NOT NULL,
			timeline    TEXT,
			quote       TEXT,
			word_count  INTEGER NOT NULL,
			created_at  TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_stories_created ON stories(created_at);
		CREATE INDEX IF NOT EXISTS idx_stories_theme ON stories(theme);
	`)
	return err
}

// Save stores the story and returns it with its assigned id. A story
// without an id gets a fresh UUID; a zero CreatedAt is set to now.
// Saving an existing id overwrites the archived copy.
func (s *Store) Save(ctx context.Context, story model.Story) (model.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if story.ID == "" {
		story.ID = uuid.NewString()
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now()
	}

	cast, err := json.Marshal(story.Characters)
	if err != nil {
		return model.Story{}, fmt.Errorf("archive: marshal characters: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO stories (id, title, theme, location, season, time_period,
			characters, content, timeline, quote, word_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, theme=excluded.theme,
			location=excluded.location, season=excluded.season,
			time_period=excluded.time_period, characters=excluded.characters,
			content=excluded.content, timeline=excluded.timeline,
			quote=excluded.quote, word_count=excluded.word_count
	`, story.ID, story.Title, story.Theme, story.Settings.Location,
		story.Settings.Season, story.Settings.TimePeriod, string(cast),
		story.Text, story.Timeline, story.Quote, story.WordCount(),
		story.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return model.Story{}, fmt.Errorf("archive: save story: %w", err)
	}
	return story, nil
}

// Get returns the archived story with the given id.
func (s *Store) Get(ctx context.Context, id string) (model.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, theme, location, season, time_period,
			characters, content, timeline, quote, created_at
		FROM stories
		WHERE id = ?
	`, id)

	var story model.Story
	var cast, timeline, quote sql.NullString
	var createdAt string

	err := row.Scan(&story.ID, &story.Title, &story.Theme,
		&story.Settings.Location, &story.Settings.Season,
		&story.Settings.TimePeriod, &cast, &story.Text, &timeline, &quote,
		&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Story{}, ErrNotFound
	}
	if err != nil {
		return model.Story{}, fmt.Errorf("archive: load story: %w", err)
	}

	if cast.Valid {
		if err := json.Unmarshal([]byte(cast.String), &story.Characters); err != nil {
			return model.Story{}, fmt.Errorf("archive: unmarshal characters: %w", err)
		}
	}
	story.Timeline = timeline.String
	story.Quote = quote.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		story.CreatedAt = t
	}
	return story, nil
}

// List returns summaries of archived stories, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 30
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, theme, location, season, word_count, created_at
		FROM stories
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: list stories: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// Search returns summaries of stories whose title or text contains the
// keyword, newest first.
func (s *Store) Search(ctx context.Context, keyword string, limit int) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 30
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, theme, location, season, word_count, created_at
		FROM stories
		WHERE title LIKE ? OR content LIKE ?
		ORDER BY created_at DESC
		LIMIT ?
	`, "%"+keyword+"%", "%"+keyword+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("archive: search stories: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]Summary, error) {
	var out []Summary
	for rows.Next() {
		var sum Summary
		var createdAt string
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Theme, &sum.Location,
			&sum.Season, &sum.WordCount, &createdAt); err != nil {
			return nil, fmt.Errorf("archive: scan summary: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			sum.CreatedAt = t
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: iterate summaries: %w", err)
	}
	return out, nil
}

// Delete removes an archived story. Deleting an unknown id returns
// ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM stories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("archive: delete story: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive: delete story: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
