package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat indicates that no extractor handles the file's format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Extractor turns a source file of one format into a single decoded text
// string. Implementations must be safe for concurrent use.
type Extractor interface {
	// Extract returns the decoded text of the file at path.
	Extract(ctx context.Context, path string) (string, error)

	// Formats returns the lowercase file extensions this extractor handles,
	// including the leading dot.
	Formats() []string
}

// Registry maps file extensions to extractors.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry creates a registry from the given extractors. A later
// extractor claiming an extension already registered wins.
func NewRegistry(extractors ...Extractor) *Registry {
	byExt := make(map[string]Extractor)
	for _, e := range extractors {
		for _, ext := range e.Formats() {
			byExt[strings.ToLower(ext)] = e
		}
	}
	return &Registry{byExt: byExt}
}

// NewDefaultRegistry creates a registry with the standard set of extractors:
// plain text and Markdown, PDF, and DOCX.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		NewTextExtractor(),
		NewPDFExtractor(),
		NewDocxExtractor(),
	)
}

// ForFile returns the extractor responsible for the file at path, based on
// its extension. Returns ErrUnsupportedFormat for unknown extensions.
func (r *Registry) ForFile(path string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return e, nil
}

// Extract resolves the extractor for path and runs it.
func (r *Registry) Extract(ctx context.Context, path string) (string, error) {
	e, err := r.ForFile(path)
	if err != nil {
		return "", err
	}
	return e.Extract(ctx, path)
}
