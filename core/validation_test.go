package core

import (
	"errors"
	"testing"
)

func TestValidateChunk(t *testing.T) {
	tests := []struct {
		name    string
		chunk   *Chunk
		wantErr error
	}{
		{
			name:    "valid paragraph chunk",
			chunk:   &Chunk{Content: "Hello world.", Type: ChunkTypeParagraph},
			wantErr: nil,
		},
		{
			name:    "valid code chunk with header",
			chunk:   &Chunk{Content: "```print(1)```", Type: ChunkTypeCode, Header: "# Usage"},
			wantErr: nil,
		},
		{
			name:    "empty header is valid",
			chunk:   &Chunk{Content: "Preamble.", Type: ChunkTypeParagraph, Header: ""},
			wantErr: nil,
		},
		{
			name:    "nil chunk",
			chunk:   nil,
			wantErr: ErrInvalidChunk,
		},
		{
			name:    "empty content",
			chunk:   &Chunk{Content: "", Type: ChunkTypeParagraph},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "untrimmed content",
			chunk:   &Chunk{Content: "  padded  ", Type: ChunkTypeParagraph},
			wantErr: ErrUntrimmedContent,
		},
		{
			name:    "invalid type",
			chunk:   &Chunk{Content: "text", Type: ChunkType(9)},
			wantErr: ErrInvalidChunkType,
		},
		{
			name:    "zero type",
			chunk:   &Chunk{Content: "text"},
			wantErr: ErrInvalidChunkType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunk(tt.chunk)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateChunk() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateChunk() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChunkRecord(t *testing.T) {
	valid := func() *ChunkRecord {
		return &ChunkRecord{
			Id:         1,
			DocumentId: "doc-1",
			Seq:        0,
			Content:    "Hello.",
			Type:       ChunkTypeParagraph,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ChunkRecord)
		wantErr error
	}{
		{
			name:    "valid record",
			mutate:  func(r *ChunkRecord) {},
			wantErr: nil,
		},
		{
			name:    "valid record without vector",
			mutate:  func(r *ChunkRecord) { r.Vector = nil },
			wantErr: nil,
		},
		{
			name:    "empty document id",
			mutate:  func(r *ChunkRecord) { r.DocumentId = "" },
			wantErr: ErrEmptyDocumentID,
		},
		{
			name:    "negative sequence",
			mutate:  func(r *ChunkRecord) { r.Seq = -1 },
			wantErr: ErrNegativeSequence,
		},
		{
			name:    "empty content",
			mutate:  func(r *ChunkRecord) { r.Content = "" },
			wantErr: ErrEmptyContent,
		},
		{
			name:    "invalid chunk type",
			mutate:  func(r *ChunkRecord) { r.Type = ChunkType(0) },
			wantErr: ErrInvalidChunkType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid()
			tt.mutate(record)
			err := ValidateChunkRecord(record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateChunkRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateChunkRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("nil record", func(t *testing.T) {
		if !errors.Is(ValidateChunkRecord(nil), ErrInvalidChunkRecord) {
			t.Errorf("ValidateChunkRecord(nil) should fail with ErrInvalidChunkRecord")
		}
	})
}

func TestValidateDocumentRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *DocumentRecord
		wantErr error
	}{
		{
			name:    "valid record",
			record:  &DocumentRecord{Id: "doc-1", SourcePath: "/tmp/a.md", Path: RouteText},
			wantErr: nil,
		},
		{
			name:    "ocr path is valid",
			record:  &DocumentRecord{Id: "doc-2", SourcePath: "/tmp/scan.pdf", Path: RouteOCR},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "empty id",
			record:  &DocumentRecord{SourcePath: "/tmp/a.md", Path: RouteText},
			wantErr: ErrEmptyDocumentID,
		},
		{
			name:    "empty source path",
			record:  &DocumentRecord{Id: "doc-1", Path: RouteText},
			wantErr: ErrEmptySourcePath,
		},
		{
			name:    "invalid path",
			record:  &DocumentRecord{Id: "doc-1", SourcePath: "/tmp/a.md"},
			wantErr: ErrInvalidRoutePath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocumentRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocumentRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
