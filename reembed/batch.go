package reembed

import (
	"context"
	"fmt"

	"github.com/hatmanstack/docpipe/ai"
	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/storage"
)

// BatchProcessor handles embedding generation for batches of chunk records.
type BatchProcessor struct {
	repo     storage.ChunkRepository
	embedder ai.Embedder
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(repo storage.ChunkRepository, embedder ai.Embedder) *BatchProcessor {
	return &BatchProcessor{
		repo:     repo,
		embedder: embedder,
	}
}

// Process generates embeddings for a batch of records and updates them in the database.
// Vectors are normalized after embedding to ensure compatibility with cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.ChunkRecord) error {
	if len(records) == 0 {
		return nil
	}

	// Extract text content
	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.Content
	}

	embeddings, err := bp.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(records), len(embeddings))
	}

	// Normalize vectors and assign to records
	for i := range records {
		records[i].Vector = NormalizeVector(embeddings[i])
	}

	// Update records in database
	_, err = bp.repo.UpdateChunkRecords(ctx, records...)
	if err != nil {
		return fmt.Errorf("failed to update records: %w", err)
	}

	return nil
}
