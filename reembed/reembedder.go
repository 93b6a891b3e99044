// Copyright 2026 Hatmanstack
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


package reembed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hatmanstack/docpipe/ai"
	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/storage"
)

// Config holds configuration for the reembedding operation.
type Config struct {
	// BatchSize is the number of records to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
	}
}

// Reembedder orchestrates the reembedding of all chunk records in a database.
type Reembedder struct {
	docRepo   storage.DocumentRepository
	chunkRepo storage.ChunkRepository
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *RecordIterator
}

// NewReembedder creates a new reembedder.
// progress: where to write progress output (typically os.Stderr)
func NewReembedder(docRepo storage.DocumentRepository, chunkRepo storage.ChunkRepository, embedder ai.Embedder, config *Config, progress io.Writer) *Reembedder {
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(chunkRepo, embedder)
	iterator := NewRecordIterator(docRepo, chunkRepo, config.BatchSize)

	return &Reembedder{
		docRepo:   docRepo,
		chunkRepo: chunkRepo,
		embedder:  embedder,
		config:    config,
		progress:  progress,
		processor: processor,
		iterator:  iterator,
	}
}

// Run executes the reembedding operation.
// All chunk records in the database will be reembedded with the configured
// embedder. Progress is reported to the configured writer.
func (r *Reembedder) Run(ctx context.Context) error {
	// First, count total chunks across all documents
	docs, err := r.docRepo.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to query documents: %w", err)
	}

	totalChunks := 0
	for _, doc := range docs {
		totalChunks += doc.ChunkCount
	}

	if totalChunks == 0 {
		fmt.Fprintf(r.progress, "No chunk records found in database (0 documents with chunks)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d chunks across %d documents (batch size: %d)\n",
		totalChunks, len(docs), r.config.BatchSize)

	// Initialize progress tracker
	tracker := NewProgressTracker(r.progress, totalChunks, r.config.ReportInterval)
	tracker.Start()

	processed := 0

	// Process all records in batches
	err = r.iterator.ForEach(ctx, func(records []*core.ChunkRecord) error {
		// Process this batch
		if err := r.processor.Process(ctx, records); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		// Update progress
		processed += len(records)
		tracker.Update(processed)

		return nil
	})

	if err != nil {
		return err
	}

	// Finish progress tracking
	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d chunks in %v (%.1f chunks/sec)\n",
		processed, elapsed.Round(time.Second), float64(processed)/elapsed.Seconds())

	return nil
}
