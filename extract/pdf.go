package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/tabula"
)

// PDFExtractor extracts text from digital PDF files using tabula.
// Scanned PDFs without a text layer yield empty output; the router is
// expected to have sent those down the OCR path already.
type PDFExtractor struct {
	logger *slog.Logger
}

var _ Extractor = (*PDFExtractor)(nil)

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{
		logger: slog.Default().With("extractor", "pdf"),
	}
}

// Formats returns the PDF extension.
func (e *PDFExtractor) Formats() []string {
	return []string{".pdf"}
}

// Extract returns the text content of all pages in reading order.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	text, warnings, err := tabula.Open(path).Text()
	if err != nil {
		return "", fmt.Errorf("extracting pdf %s: %w", path, err)
	}
	if len(warnings) > 0 {
		e.logger.Warn("pdf extraction produced warnings",
			"path", path,
			"warnings", tabula.FormatWarnings(warnings))
	}
	return text, nil
}
