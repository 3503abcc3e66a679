package multi

import (
	"context"
	"errors"

	"github.com/not-lavanya/janeaustenstoryteller/internal/export"
	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
)

// Multi fans out stories to multiple export.Exporter implementations.
// Each Export call delivers the story to every wrapped exporter
// sequentially. If one exporter fails, the remaining exporters still
// receive the story.
type Multi struct {
	exporters []export.Exporter
}

// New creates a Multi that fans out to the given exporters.
func New(exporters ...export.Exporter) *Multi {
	return &Multi{exporters: exporters}
}

// Export delivers the story to every wrapped exporter. Errors are
// collected but do not prevent delivery to subsequent exporters.
func (m *Multi) Export(ctx context.Context, story model.Story) error {
	var errs []error
	for _, e := range m.exporters {
		if err := e.Export(ctx, story); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped exporter, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, e := range m.exporters {
		if err := e.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
