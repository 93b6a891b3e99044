package badger

import (
	"context"
	"testing"

	"github.com/hatmanstack/docpipe/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestFindSimilar_NoRecords(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	vector := []float32{0.1, 0.2, 0.3}

	results, err := backend.FindSimilar(ctx, vector, 0.5, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindSimilar_WithRecords(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		chunkRepo.Close()
		docRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	docID := core.NewDocumentID()

	// Create records with different vectors
	records := []*core.ChunkRecord{
		{
			DocumentId: docID,
			Seq:        0,
			Content:    "First paragraph",
			Type:       core.ChunkTypeParagraph,
			Vector:     []float32{1.0, 0.0, 0.0}, // Very similar to query
		},
		{
			DocumentId: docID,
			Seq:        1,
			Content:    "Second paragraph",
			Type:       core.ChunkTypeParagraph,
			Vector:     []float32{0.9, 0.1, 0.0}, // Somewhat similar
		},
		{
			DocumentId: docID,
			Seq:        2,
			Content:    "Third paragraph",
			Type:       core.ChunkTypeParagraph,
			Vector:     []float32{0.0, 0.0, 1.0}, // Not similar
		},
		{
			DocumentId: docID,
			Seq:        3,
			Content:    "Fourth paragraph without vector",
			Type:       core.ChunkTypeParagraph,
			Vector:     nil, // No vector - should be skipped
		},
	}

	added, err := chunkRepo.AddChunkRecords(ctx, records...)
	require.NoError(t, err)
	require.Len(t, added, 4)

	// Search for similar records
	queryVector := []float32{1.0, 0.0, 0.0}
	results, err := backend.FindSimilar(ctx, queryVector, 0.8, 10)
	require.NoError(t, err)

	// Should find the two similar records, most similar first
	require.Len(t, results, 2)
	assert.Equal(t, "First paragraph", results[0].Record.Content)
	assert.Equal(t, "Second paragraph", results[1].Record.Content)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestFindSimilar_RespectsLimit(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		chunkRepo.Close()
		docRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	docID := core.NewDocumentID()

	for i := 0; i < 5; i++ {
		_, err := chunkRepo.AddChunkRecords(ctx, &core.ChunkRecord{
			DocumentId: docID,
			Seq:        i,
			Content:    "Paragraph",
			Type:       core.ChunkTypeParagraph,
			Vector:     []float32{1.0, 0.0, 0.0},
		})
		require.NoError(t, err)
	}

	results, err := backend.FindSimilar(ctx, []float32{1.0, 0.0, 0.0}, 0.5, 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"identical unit vectors", []float32{1, 0, 0}, []float32{1, 0, 0}, 1.0},
		{"orthogonal vectors", []float32{1, 0, 0}, []float32{0, 1, 0}, 0.0},
		{"mismatched lengths", []float32{1, 1}, []float32{1, 1, 1}, 2.0},
		{"empty vectors", []float32{}, []float32{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, dotProduct(tt.a, tt.b), 0.0001)
		})
	}
}
