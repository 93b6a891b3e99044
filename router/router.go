// Package router decides which processing path a document takes before any
// expensive work happens: direct text extraction for machine-readable
// formats, optical recognition for everything else.
package router

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hatmanstack/docpipe/core"
	"github.com/tsawler/tabula"
)

// Router inspects a source file and routes it to a processing path.
type Router struct {
	textPathEnabled bool
	probe           func(path string) (bool, error)
	logger          *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithTextPathEnabled toggles the direct text extraction path. When
// disabled, every document is routed to optical recognition.
func WithTextPathEnabled(enabled bool) Option {
	return func(r *Router) {
		r.textPathEnabled = enabled
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// withProbe overrides the digital-PDF probe. Used by tests.
func withProbe(probe func(path string) (bool, error)) Option {
	return func(r *Router) {
		r.probe = probe
	}
}

// NewRouter creates a router with the text path enabled.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		textPathEnabled: true,
		probe:           pdfHasTextLayer,
		logger:          slog.Default().With("component", "router"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route decides the processing path for the file at path. Plain text,
// Markdown, and Word documents always take the text path; PDFs take it only
// when they carry a text layer. Anything else, and any PDF whose probe
// fails, goes to optical recognition. Route never returns an error: an
// undecidable document is an OCR document.
func (r *Router) Route(path string) core.RoutePath {
	if !r.textPathEnabled {
		r.logger.Info("text path is disabled, routing to OCR", "path", path)
		return core.RouteOCR
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".text", ".md", ".markdown", ".docx":
		return core.RouteText
	case ".pdf":
		digital, err := r.probe(path)
		if err != nil {
			r.logger.Error("error probing pdf, defaulting to OCR", "path", path, "err", err)
			return core.RouteOCR
		}
		if digital {
			r.logger.Debug("pdf is digital", "path", path)
			return core.RouteText
		}
		r.logger.Debug("pdf is image-based", "path", path)
		return core.RouteOCR
	default:
		return core.RouteOCR
	}
}

// pdfHasTextLayer reports whether any page of the PDF contains extractable
// text.
func pdfHasTextLayer(path string) (bool, error) {
	text, _, err := tabula.Open(path).Text()
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(text) != "", nil
}
