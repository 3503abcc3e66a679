// Package htmlfile exports stories as standalone HTML pages.
package htmlfile

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

var page = template.Must(template.New("story").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 46em; margin: 2em auto; color: #2b2b2b; }
h1 { text-align: center; font-variant: small-caps; }
.meta { text-align: center; font-style: italic; color: #666; }
.cast { margin: 1.5em 0; }
pre { font-family: monospace; overflow-x: auto; background: #faf8f2; padding: 1em; }
blockquote { border-left: 3px solid #b8a170; padding-left: 1em; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.Theme}} &mdash; {{.Settings.Location}}, {{.Settings.Season}}, {{.Settings.TimePeriod}}</p>
{{if .Characters}}<div class="cast"><h2>Dramatis Personae</h2><ul>
{{range .Characters}}<li><strong>{{.Name}}</strong>{{if .Occupation}}, {{.Occupation}}{{end}}{{if .SocialClass}} ({{.SocialClass}}){{end}}</li>
{{end}}</ul></div>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}{{if .Timeline}}<pre>{{.Timeline}}</pre>
{{end}}{{if .Quote}}<blockquote><pre>{{.Quote}}</pre></blockquote>
{{end}}</body>
</html>
`))

type pageData struct {
	model.Story
	Paragraphs []string
}

// Exporter writes each story to its own HTML file inside a directory.
type Exporter struct {
	dir string
	mu  sync.Mutex
	seq int
}

// New creates an HTML exporter writing into the given directory,
// creating it as needed.
func New(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("htmlfile export: mkdir %s: %w", dir, err)
	}
	return &Exporter{dir: dir}, nil
}

// Export renders the story template into {dir}/{slug}.html.
func (e *Exporter) Export(_ context.Context, story model.Story) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.seq++
	name := fmt.Sprintf("%s-%d.html", slug(story.Title), e.seq)
	f, err := os.Create(filepath.Join(e.dir, name))
	if err != nil {
		return fmt.Errorf("htmlfile export: create: %w", err)
	}
	data := pageData{Story: story, Paragraphs: paragraphs(story.Text)}
	if err := page.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("htmlfile export: render: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("htmlfile export: close: %w", err)
	}
	return nil
}

// Close is a no-op; each Export call owns its own file.
func (e *Exporter) Close() error {
	return nil
}

func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('-')
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "story"
	}
	return s
}
