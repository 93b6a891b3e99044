package badger

import (
	"context"
	"testing"

	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChunkRepo(t *testing.T) (storage.ChunkRepository, *Backend) {
	t.Helper()
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		chunkRepo.Close()
		docRepo.Close()
		backend.Close()
	})
	return chunkRepo, backend
}

func TestAddChunkRecords(t *testing.T) {
	repo, _ := setupChunkRepo(t)
	ctx := context.Background()
	docID := core.NewDocumentID()

	records := []*core.ChunkRecord{
		{DocumentId: docID, Seq: 0, Content: "Intro paragraph.", Type: core.ChunkTypeParagraph},
		{DocumentId: docID, Seq: 1, Content: "```\ncode\n```", Type: core.ChunkTypeCode, Header: "# Usage"},
	}

	added, err := repo.AddChunkRecords(ctx, records...)
	require.NoError(t, err)
	require.Len(t, added, 2)

	for _, record := range added {
		assert.NotZero(t, record.Id)
		assert.False(t, record.InsertedAt.IsZero())
		assert.Equal(t, record.InsertedAt, record.UpdatedAt)
	}

	// IDs are content-based and deterministic
	assert.Equal(t, core.ChunkID(docID, 0, "Intro paragraph."), added[0].Id)
}

func TestGetChunkRecord(t *testing.T) {
	repo, _ := setupChunkRepo(t)
	ctx := context.Background()
	docID := core.NewDocumentID()

	added, err := repo.AddChunkRecords(ctx, &core.ChunkRecord{
		DocumentId: docID,
		Seq:        0,
		Content:    "Findable content.",
		Type:       core.ChunkTypeParagraph,
		Header:     "## Section",
	})
	require.NoError(t, err)

	got, err := repo.GetChunkRecord(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "Findable content.", got.Content)
	assert.Equal(t, "## Section", got.Header)
	assert.Equal(t, core.ChunkTypeParagraph, got.Type)
}

func TestGetChunkRecord_NotFound(t *testing.T) {
	repo, _ := setupChunkRepo(t)

	_, err := repo.GetChunkRecord(context.Background(), core.ID(99999))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetChunkRecords_SkipsMissing(t *testing.T) {
	repo, _ := setupChunkRepo(t)
	ctx := context.Background()
	docID := core.NewDocumentID()

	added, err := repo.AddChunkRecords(ctx, &core.ChunkRecord{
		DocumentId: docID, Seq: 0, Content: "Only record.", Type: core.ChunkTypeParagraph,
	})
	require.NoError(t, err)

	got, err := repo.GetChunkRecords(ctx, added[0].Id, core.ID(424242))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, added[0].Id, got[0].Id)
}

func TestUpdateChunkRecords(t *testing.T) {
	repo, _ := setupChunkRepo(t)
	ctx := context.Background()
	docID := core.NewDocumentID()

	added, err := repo.AddChunkRecords(ctx, &core.ChunkRecord{
		DocumentId: docID, Seq: 0, Content: "Original.", Type: core.ChunkTypeParagraph,
	})
	require.NoError(t, err)

	record := added[0]
	record.Vector = []float32{0.5, 0.5}

	updated, err := repo.UpdateChunkRecords(ctx, record)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	got, err := repo.GetChunkRecord(ctx, record.Id)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, got.Vector)
	assert.True(t, got.UpdatedAt.After(got.InsertedAt) || got.UpdatedAt.Equal(got.InsertedAt))
}

func TestUpdateChunkRecords_NotFound(t *testing.T) {
	repo, _ := setupChunkRepo(t)

	_, err := repo.UpdateChunkRecords(context.Background(), &core.ChunkRecord{
		Id: core.ID(777), DocumentId: "nope", Content: "ghost", Type: core.ChunkTypeParagraph,
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteChunkRecords(t *testing.T) {
	repo, _ := setupChunkRepo(t)
	ctx := context.Background()
	docID := core.NewDocumentID()

	added, err := repo.AddChunkRecords(ctx, &core.ChunkRecord{
		DocumentId: docID, Seq: 0, Content: "Doomed.", Type: core.ChunkTypeParagraph,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteChunkRecords(ctx, added[0].Id))

	_, err = repo.GetChunkRecord(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Document order index is cleaned up too
	chunks, err := repo.GetChunksByDocument(ctx, docID)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestDeleteChunkRecords_NotFound(t *testing.T) {
	repo, _ := setupChunkRepo(t)

	err := repo.DeleteChunkRecords(context.Background(), core.ID(31337))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetChunksByDocument_Ordered(t *testing.T) {
	repo, _ := setupChunkRepo(t)
	ctx := context.Background()
	docID := core.NewDocumentID()
	otherDocID := core.NewDocumentID()

	// Insert out of order to verify the index orders by sequence
	records := []*core.ChunkRecord{
		{DocumentId: docID, Seq: 2, Content: "Third.", Type: core.ChunkTypeParagraph},
		{DocumentId: docID, Seq: 0, Content: "First.", Type: core.ChunkTypeParagraph},
		{DocumentId: otherDocID, Seq: 0, Content: "Other doc.", Type: core.ChunkTypeParagraph},
		{DocumentId: docID, Seq: 1, Content: "Second.", Type: core.ChunkTypeCode},
	}
	_, err := repo.AddChunkRecords(ctx, records...)
	require.NoError(t, err)

	chunks, err := repo.GetChunksByDocument(ctx, docID)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, "First.", chunks[0].Content)
	assert.Equal(t, "Second.", chunks[1].Content)
	assert.Equal(t, "Third.", chunks[2].Content)
}

func TestGetChunksByDocument_Empty(t *testing.T) {
	repo, _ := setupChunkRepo(t)

	chunks, err := repo.GetChunksByDocument(context.Background(), "no-such-doc")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestDeleteChunksByDocument(t *testing.T) {
	repo, _ := setupChunkRepo(t)
	ctx := context.Background()
	docID := core.NewDocumentID()
	keepDocID := core.NewDocumentID()

	_, err := repo.AddChunkRecords(ctx,
		&core.ChunkRecord{DocumentId: docID, Seq: 0, Content: "A.", Type: core.ChunkTypeParagraph},
		&core.ChunkRecord{DocumentId: docID, Seq: 1, Content: "B.", Type: core.ChunkTypeParagraph},
		&core.ChunkRecord{DocumentId: keepDocID, Seq: 0, Content: "Keep.", Type: core.ChunkTypeParagraph},
	)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteChunksByDocument(ctx, docID))

	chunks, err := repo.GetChunksByDocument(ctx, docID)
	require.NoError(t, err)
	assert.Empty(t, chunks)

	kept, err := repo.GetChunksByDocument(ctx, keepDocID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestDeleteChunksByDocument_MissingDocIsNoop(t *testing.T) {
	repo, _ := setupChunkRepo(t)

	assert.NoError(t, repo.DeleteChunksByDocument(context.Background(), "ghost-doc"))
}
