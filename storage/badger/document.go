package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) (*DocumentRepository, error) {
	return &DocumentRepository{
		backend: backend,
	}, nil
}

// Close releases resources. DocumentRepository has no resources to release.
func (r *DocumentRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *DocumentRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *DocumentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddDocuments adds one or more document records to storage.
func (r *DocumentRepository) AddDocuments(ctx context.Context, docs ...*core.DocumentRecord) ([]*core.DocumentRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			// Generate an ID if not set
			if doc.Id == "" {
				doc.Id = core.NewDocumentID()
			}

			// Set timestamps
			doc.InsertedAt = time.Now().UTC()
			doc.UpdatedAt = doc.InsertedAt

			// Store primary record
			key := makeDocumentKey(doc.Id)
			value := storage.MarshalDocumentRecord(doc)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store source path index
			if doc.SourcePath != "" {
				pathKey := makeDocumentPathKey(doc.SourcePath)
				if err := tx.Set(pathKey, []byte(doc.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return docs, err
}

// UpdateDocuments updates existing document records.
func (r *DocumentRepository) UpdateDocuments(ctx context.Context, docs ...*core.DocumentRecord) ([]*core.DocumentRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			key := makeDocumentKey(doc.Id)

			// Read old record to detect changes
			old, err := readDocumentRecord(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			doc.UpdatedAt = time.Now().UTC()
			if doc.InsertedAt.IsZero() {
				doc.InsertedAt = old.InsertedAt
			}

			// Store updated record
			value := storage.MarshalDocumentRecord(doc)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update source path index if path changed
			if old.SourcePath != doc.SourcePath {
				if old.SourcePath != "" {
					if err := tx.Delete(makeDocumentPathKey(old.SourcePath)); err != nil {
						return err
					}
				}
				if doc.SourcePath != "" {
					if err := tx.Set(makeDocumentPathKey(doc.SourcePath), []byte(doc.Id)); err != nil {
						return err
					}
				}
			}
		}
		return tx.Commit()
	}, true)

	return docs, err
}

// DeleteDocuments removes document records by their IDs.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeDocumentKey(id)

			// Read record to get metadata for index cleanup
			doc, err := readDocumentRecord(tx, key)
			if err != nil {
				return err
			}
			if doc == nil {
				return storage.ErrNotFound
			}

			// Delete from source path index
			if doc.SourcePath != "" {
				if err := tx.Delete(makeDocumentPathKey(doc.SourcePath)); err != nil {
					return err
				}
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a single document record by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id string) (*core.DocumentRecord, error) {
	var result *core.DocumentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDocumentKey(id)
		var err error
		result, err = readDocumentRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// FindDocumentBySourcePath finds a document record by its source path.
func (r *DocumentRepository) FindDocumentBySourcePath(ctx context.Context, sourcePath string) (*core.DocumentRecord, error) {
	var result *core.DocumentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from path index
		pathKey := makeDocumentPathKey(sourcePath)
		item, err := tx.Get(pathKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var docID string
		if err := item.Value(func(val []byte) error {
			docID = string(val)
			return nil
		}); err != nil {
			return err
		}

		// Look up full record
		result, err = readDocumentRecord(tx, makeDocumentKey(docID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListDocuments retrieves all document records from storage.
func (r *DocumentRepository) ListDocuments(ctx context.Context) ([]*core.DocumentRecord, error) {
	var results []*core.DocumentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(documentRecordPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			key := item.Key()

			// Stop if we've moved past document keys
			if !hasPrefix(key, prefix) {
				break
			}

			var doc *core.DocumentRecord
			err := item.Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalDocumentRecord(val)
				return err
			})
			if err != nil {
				return err
			}

			if doc != nil {
				results = append(results, doc)
			}
		}
		return nil
	}, false)

	return results, err
}

// Helper methods

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

// readDocumentRecord reads a document record from the transaction.
func readDocumentRecord(tx *badger.Txn, key []byte) (*core.DocumentRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc *core.DocumentRecord
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = storage.UnmarshalDocumentRecord(val)
		return err
	})
	return doc, err
}
