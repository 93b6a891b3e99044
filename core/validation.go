// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Content must be trimmed
//   - Type must be valid (Paragraph or Code)
//
// NOT validated:
//   - Header (the empty string is a legal header for preamble chunks)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	if strings.TrimSpace(chunk.Content) != chunk.Content {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrUntrimmedContent)
	}

	if err := ValidateChunkType(chunk.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, err)
	}

	return nil
}

// ValidateChunkRecord validates a ChunkRecord according to domain rules.
//
// Validation rules:
//   - DocumentId must not be empty
//   - Seq must not be negative
//   - Content and Type follow the Chunk rules
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the embedding stage runs)
func ValidateChunkRecord(record *ChunkRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidChunkRecord)
	}

	if record.DocumentId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunkRecord, ErrEmptyDocumentID)
	}

	if record.Seq < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunkRecord, ErrNegativeSequence)
	}

	chunk := Chunk{Content: record.Content, Type: record.Type, Header: record.Header}
	if err := ValidateChunk(&chunk); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChunkRecord, err)
	}

	return nil
}

// ValidateDocumentRecord validates a DocumentRecord according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - SourcePath must not be empty
//   - Path must be valid (TextPath or OCRPath)
func ValidateDocumentRecord(record *DocumentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidDocument)
	}

	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentID)
	}

	if record.SourcePath == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptySourcePath)
	}

	if err := ValidateRoutePath(record.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// ValidateChunkType validates that a ChunkType has a valid value.
func ValidateChunkType(t ChunkType) error {
	if t != ChunkTypeParagraph && t != ChunkTypeCode {
		return fmt.Errorf("%w: value %d", ErrInvalidChunkType, t)
	}
	return nil
}

// ValidateRoutePath validates that a RoutePath has a valid value.
func ValidateRoutePath(p RoutePath) error {
	if p != RouteText && p != RouteOCR {
		return fmt.Errorf("%w: value %d", ErrInvalidRoutePath, p)
	}
	return nil
}
