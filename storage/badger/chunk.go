package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) (*ChunkRepository, error) {
	return &ChunkRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ChunkRepository has no resources to release.
func (r *ChunkRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *ChunkRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddChunkRecords adds one or more chunk records to storage.
func (r *ChunkRepository) AddChunkRecords(ctx context.Context, records ...*core.ChunkRecord) ([]*core.ChunkRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			// Use content-based ID if not set
			if record.Id == 0 {
				record.Id = core.ChunkID(record.DocumentId, record.Seq, record.Content)
			}

			// Set timestamps
			record.InsertedAt = time.Now().UTC()
			record.UpdatedAt = record.InsertedAt

			// Store primary record
			key := makeChunkRecordKey(record.Id)
			value := storage.MarshalChunkRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store document order index
			seqKey := makeChunkDocSeqKey(record.DocumentId, record.Seq)
			if err := tx.Set(seqKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateChunkRecords updates existing chunk records.
func (r *ChunkRepository) UpdateChunkRecords(ctx context.Context, records ...*core.ChunkRecord) ([]*core.ChunkRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeChunkRecordKey(record.Id)

			// Read old record to detect changes
			old, err := readChunkRecord(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			record.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalChunkRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update document order index if position changed
			if old.DocumentId != record.DocumentId || old.Seq != record.Seq {
				oldSeqKey := makeChunkDocSeqKey(old.DocumentId, old.Seq)
				if err := tx.Delete(oldSeqKey); err != nil {
					return err
				}
				newSeqKey := makeChunkDocSeqKey(record.DocumentId, record.Seq)
				if err := tx.Set(newSeqKey, storage.MarshalID(record.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteChunkRecords removes chunk records by their IDs.
func (r *ChunkRepository) DeleteChunkRecords(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeChunkRecordKey(id)

			// Read record to get metadata for index cleanup
			record, err := readChunkRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			// Delete from document order index
			seqKey := makeChunkDocSeqKey(record.DocumentId, record.Seq)
			if err := tx.Delete(seqKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeleteChunksByDocument removes all chunk records belonging to a document.
func (r *ChunkRepository) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	ids, err := r.chunkIDsByDocument(documentID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return r.DeleteChunkRecords(ctx, ids...)
}

// GetChunkRecord retrieves a single chunk record by ID.
func (r *ChunkRepository) GetChunkRecord(ctx context.Context, id core.ID) (*core.ChunkRecord, error) {
	var result *core.ChunkRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeChunkRecordKey(id)
		var err error
		result, err = readChunkRecord(tx, key)
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

// GetChunkRecords retrieves multiple chunk records by their IDs.
func (r *ChunkRepository) GetChunkRecords(ctx context.Context, ids ...core.ID) ([]*core.ChunkRecord, error) {
	var result []*core.ChunkRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeChunkRecordKey(id)
			record, err := readChunkRecord(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetChunksByDocument retrieves all chunk records for a document, ordered by
// sequence number ascending.
func (r *ChunkRepository) GetChunksByDocument(ctx context.Context, documentID string) ([]*core.ChunkRecord, error) {
	var results []*core.ChunkRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialChunkDocSeqKey(documentID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			// Read the ID from the index
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeChunkRecordKey(recordID)
			record, err := readChunkRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// Helper methods

// chunkIDsByDocument collects the IDs of all chunks in a document, in
// sequence order.
func (r *ChunkRepository) chunkIDsByDocument(documentID string) ([]core.ID, error) {
	var ids []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialChunkDocSeqKey(documentID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}
			ids = append(ids, recordID)
		}
		return nil
	}, false)
	return ids, err
}

// readChunkRecord reads a chunk record from the transaction.
func readChunkRecord(tx *badger.Txn, key []byte) (*core.ChunkRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.ChunkRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalChunkRecord(val)
		return unmarshalErr
	})
	return record, err
}
