package extract

import (
	"context"
	"fmt"

	"github.com/tsawler/tabula/docx"
)

// DocxExtractor extracts text from Word documents.
type DocxExtractor struct{}

var _ Extractor = (*DocxExtractor)(nil)

// NewDocxExtractor creates a DOCX text extractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Formats returns the Word document extension.
func (e *DocxExtractor) Formats() []string {
	return []string{".docx"}
}

// Extract returns the document's paragraph text in order.
func (e *DocxExtractor) Extract(ctx context.Context, path string) (string, error) {
	r, err := docx.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening docx %s: %w", path, err)
	}
	defer r.Close()

	text, err := r.Text()
	if err != nil {
		return "", fmt.Errorf("extracting docx %s: %w", path, err)
	}
	return text, nil
}
