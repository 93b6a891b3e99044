package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/hatmanstack/docpipe/core"
)

// Key prefixes for different data types
const (
	chunkRecordPrefix    = "chkrec"
	chunkDocSeqPrefix    = "chkrecd"
	documentRecordPrefix = "docrec"
	documentPathPrefix   = "docpath"
)

// makeChunkRecordKey generates a key for a chunk record by ID.
func makeChunkRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkRecordPrefix, id))
}

// makeChunkDocSeqKey generates a composite key for the document order index.
// Format: prefix:documentID:seq
func makeChunkDocSeqKey(documentID string, seq int) []byte {
	prefix := chunkDocSeqPrefix + ":" + documentID + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for the sequence number
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort follows document order
	binary.BigEndian.PutUint64(buf[offset:], uint64(seq))
	return buf
}

// makePartialChunkDocSeqKey generates a partial key for scanning all chunks
// of a document in sequence order.
// Format: prefix:documentID:
func makePartialChunkDocSeqKey(documentID string) []byte {
	return []byte(chunkDocSeqPrefix + ":" + documentID + ":")
}

// makeDocumentKey generates a key for a document record by ID.
func makeDocumentKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", documentRecordPrefix, id))
}

// makeDocumentPathKey generates a key for the source path index.
// Format: prefix:sourcePath
func makeDocumentPathKey(sourcePath string) []byte {
	return []byte(documentPathPrefix + ":" + sourcePath)
}
