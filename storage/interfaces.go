package storage

import (
	"context"

	"github.com/hatmanstack/docpipe/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds chunk records similar to the given vector.
	// Returns records with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing document records.
type DocumentRepository interface {
	Repository
	// AddDocuments adds one or more document records to storage.
	// Sets InsertedAt timestamp on each record.
	// Returns the records with timestamps populated.
	AddDocuments(ctx context.Context, docs ...*core.DocumentRecord) ([]*core.DocumentRecord, error)

	// UpdateDocuments updates existing document records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.DocumentRecord) ([]*core.DocumentRecord, error)

	// DeleteDocuments removes document records by their IDs.
	// Also removes associated indices. Chunk records are not touched;
	// use ChunkRepository.DeleteChunksByDocument for a full cascade.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...string) error

	// GetDocument retrieves a single document record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetDocument(ctx context.Context, id string) (*core.DocumentRecord, error)

	// FindDocumentBySourcePath finds a document record by its source path.
	// Returns ErrNotFound if no matching record exists.
	FindDocumentBySourcePath(ctx context.Context, sourcePath string) (*core.DocumentRecord, error)

	// ListDocuments retrieves all document records from storage.
	ListDocuments(ctx context.Context) ([]*core.DocumentRecord, error)
}

// ChunkRepository provides operations for managing chunk records.
type ChunkRepository interface {
	Repository
	// AddChunkRecords adds one or more chunk records to storage.
	// Uses content-based IDs (ChunkID of document, position, and content).
	// Sets InsertedAt timestamp on each record.
	// Returns the records with IDs and timestamps populated.
	AddChunkRecords(ctx context.Context, records ...*core.ChunkRecord) ([]*core.ChunkRecord, error)

	// UpdateChunkRecords updates existing chunk records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateChunkRecords(ctx context.Context, records ...*core.ChunkRecord) ([]*core.ChunkRecord, error)

	// DeleteChunkRecords removes chunk records by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteChunkRecords(ctx context.Context, ids ...core.ID) error

	// DeleteChunksByDocument removes all chunk records belonging to a document.
	// Missing documents are not an error; deleting zero chunks is a no-op.
	DeleteChunksByDocument(ctx context.Context, documentID string) error

	// GetChunkRecord retrieves a single chunk record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetChunkRecord(ctx context.Context, id core.ID) (*core.ChunkRecord, error)

	// GetChunkRecords retrieves multiple chunk records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetChunkRecords(ctx context.Context, ids ...core.ID) ([]*core.ChunkRecord, error)

	// GetChunksByDocument retrieves all chunk records for a document,
	// ordered by sequence number ascending.
	GetChunksByDocument(ctx context.Context, documentID string) ([]*core.ChunkRecord, error)
}
