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

	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/storage"
)

const (
	// DefaultBatchSize is the default number of records to process in each batch
	DefaultBatchSize = 100
)

// RecordIterator iterates over all chunk records in batches, document by
// document, in document order.
type RecordIterator struct {
	docRepo   storage.DocumentRepository
	chunkRepo storage.ChunkRepository
	batchSize int
}

// NewRecordIterator creates a new record iterator.
// batchSize: number of records to process in each batch (must be > 0)
func NewRecordIterator(docRepo storage.DocumentRepository, chunkRepo storage.ChunkRepository, batchSize int) *RecordIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &RecordIterator{
		docRepo:   docRepo,
		chunkRepo: chunkRepo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all chunk records, calling fn for each batch.
// Batches never span documents, so fn always sees chunks of a single
// document in sequence order. Iteration stops on first error from fn.
// Context cancellation is checked between batches.
func (it *RecordIterator) ForEach(ctx context.Context, fn func([]*core.ChunkRecord) error) error {
	docs, err := it.docRepo.ListDocuments(ctx)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		// Check context before each document
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		records, err := it.chunkRepo.GetChunksByDocument(ctx, doc.Id)
		if err != nil {
			return err
		}

		for i := 0; i < len(records); i += it.batchSize {
			end := i + it.batchSize
			if end > len(records) {
				end = len(records)
			}

			if err := fn(records[i:end]); err != nil {
				return err
			}

			// Check context after each batch
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
	}

	return nil
}
