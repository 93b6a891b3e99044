package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// ID is a unique identifier for persisted chunk records.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ChunkID generates a deterministic ID for a chunk from its document,
// position, and content. Two documents containing identical text produce
// distinct chunk IDs.
func ChunkID(documentID string, seq int, content string) ID {
	return IDFromContent(documentID + "#" + strconv.Itoa(seq) + "#" + content)
}

// NewDocumentID generates a random document identifier.
func NewDocumentID() string {
	return uuid.NewString()
}

// ChunkType classifies a chunk of extracted text.
type ChunkType int

const (
	// ChunkTypeParagraph is prose split on blank lines.
	ChunkTypeParagraph ChunkType = iota + 1
	// ChunkTypeCode is a fenced code span kept verbatim.
	ChunkTypeCode
)

// String returns the wire representation of the chunk type.
func (t ChunkType) String() string {
	switch t {
	case ChunkTypeParagraph:
		return "paragraph"
	case ChunkTypeCode:
		return "code"
	default:
		return "unknown"
	}
}

// RoutePath identifies the processing path chosen for a document.
type RoutePath int

const (
	// RouteText means the document contains machine-readable text and can be
	// extracted directly.
	RouteText RoutePath = iota + 1
	// RouteOCR means the document needs optical recognition before any text
	// is available.
	RouteOCR
)

// String returns the wire representation of the route path.
func (p RoutePath) String() string {
	switch p {
	case RouteText:
		return "TEXT_PATH"
	case RouteOCR:
		return "OCR_PATH"
	default:
		return "unknown"
	}
}

// Chunk is one retrievable unit of extracted text. Content is non-empty and
// trimmed; Header holds the most recent enclosing section header, or the
// empty string for preamble text. Chunks are immutable once produced and
// independent of each other.
type Chunk struct {
	Content string
	Type    ChunkType
	Header  string
}

// DocumentRecord tracks one ingested document through the pipeline.
type DocumentRecord struct {
	Id         string
	SourcePath string
	Path       RoutePath
	Class      string // document class label assigned by the classifier, if any
	Title      string
	ChunkCount int
	VectorURI  string // location of the JSONL vector object written for this document
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// ChunkRecord is a persisted chunk. Seq reflects the chunk's position in
// document order; the Vector is populated by the embedding stage.
type ChunkRecord struct {
	Id         ID
	DocumentId string
	Seq        int
	Content    string
	Type       ChunkType
	Header     string
	Vector     []float32
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// NewChunkRecord builds an unembedded record from a chunker output chunk.
func NewChunkRecord(documentID string, seq int, chunk Chunk) *ChunkRecord {
	return &ChunkRecord{
		Id:         ChunkID(documentID, seq, chunk.Content),
		DocumentId: documentID,
		Seq:        seq,
		Content:    chunk.Content,
		Type:       chunk.Type,
		Header:     chunk.Header,
	}
}

// SimilarityMatch represents a chunk record match from vector similarity search.
type SimilarityMatch struct {
	RecordId ID
	Score    float32
}

// SearchResult represents a search result with the full record and relevance score.
type SearchResult struct {
	Record *ChunkRecord
	Score  float32
}
