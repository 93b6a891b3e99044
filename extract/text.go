package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// TextExtractor reads plain text and Markdown files directly.
type TextExtractor struct{}

var _ Extractor = (*TextExtractor)(nil)

// NewTextExtractor creates an extractor for plain text formats.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Formats returns the plain text extensions.
func (e *TextExtractor) Formats() []string {
	return []string{".txt", ".text", ".md", ".markdown"}
}

// Extract reads the file and returns its contents as a valid UTF-8 string.
// Invalid byte sequences are replaced rather than propagated, so downstream
// components always receive well-formed text.
func (e *TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
}
