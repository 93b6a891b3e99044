package badger

import (
	"context"
	"testing"

	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDocRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		chunkRepo.Close()
		docRepo.Close()
		backend.Close()
	})
	return docRepo
}

func TestAddDocuments(t *testing.T) {
	repo := setupDocRepo(t)
	ctx := context.Background()

	docs := []*core.DocumentRecord{
		{SourcePath: "/data/a.md", Path: core.RouteText, Title: "A"},
		{SourcePath: "/data/b.pdf", Path: core.RouteOCR, Title: "B"},
	}

	added, err := repo.AddDocuments(ctx, docs...)
	require.NoError(t, err)
	require.Len(t, added, 2)

	for _, doc := range added {
		assert.NotEmpty(t, doc.Id)
		assert.False(t, doc.InsertedAt.IsZero())
	}
	assert.NotEqual(t, added[0].Id, added[1].Id)
}

func TestAddDocuments_KeepsProvidedID(t *testing.T) {
	repo := setupDocRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.DocumentRecord{
		Id:         "fixed-id",
		SourcePath: "/data/fixed.txt",
		Path:       core.RouteText,
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", added[0].Id)
}

func TestGetDocument(t *testing.T) {
	repo := setupDocRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.DocumentRecord{
		SourcePath: "/data/report.docx",
		Path:       core.RouteText,
		Class:      "scientific report",
		Title:      "Annual Report",
		ChunkCount: 7,
	})
	require.NoError(t, err)

	got, err := repo.GetDocument(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "/data/report.docx", got.SourcePath)
	assert.Equal(t, "scientific report", got.Class)
	assert.Equal(t, "Annual Report", got.Title)
	assert.Equal(t, 7, got.ChunkCount)
}

func TestGetDocument_NotFound(t *testing.T) {
	repo := setupDocRepo(t)

	_, err := repo.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFindDocumentBySourcePath(t *testing.T) {
	repo := setupDocRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.DocumentRecord{
		SourcePath: "/inbox/letter.txt",
		Path:       core.RouteText,
	})
	require.NoError(t, err)

	got, err := repo.FindDocumentBySourcePath(ctx, "/inbox/letter.txt")
	require.NoError(t, err)
	assert.Equal(t, added[0].Id, got.Id)

	_, err = repo.FindDocumentBySourcePath(ctx, "/inbox/unknown.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateDocuments(t *testing.T) {
	repo := setupDocRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.DocumentRecord{
		SourcePath: "/data/doc.md",
		Path:       core.RouteText,
	})
	require.NoError(t, err)

	doc := added[0]
	doc.Class = "memo"
	doc.ChunkCount = 4
	doc.VectorURI = "vectors/" + doc.Id + "/doc.jsonl"

	_, err = repo.UpdateDocuments(ctx, doc)
	require.NoError(t, err)

	got, err := repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, "memo", got.Class)
	assert.Equal(t, 4, got.ChunkCount)
	assert.Equal(t, "vectors/"+doc.Id+"/doc.jsonl", got.VectorURI)
}

func TestUpdateDocuments_PathIndexMoves(t *testing.T) {
	repo := setupDocRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.DocumentRecord{
		SourcePath: "/old/location.txt",
		Path:       core.RouteText,
	})
	require.NoError(t, err)

	doc := added[0]
	doc.SourcePath = "/new/location.txt"
	_, err = repo.UpdateDocuments(ctx, doc)
	require.NoError(t, err)

	_, err = repo.FindDocumentBySourcePath(ctx, "/old/location.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := repo.FindDocumentBySourcePath(ctx, "/new/location.txt")
	require.NoError(t, err)
	assert.Equal(t, doc.Id, got.Id)
}

func TestUpdateDocuments_NotFound(t *testing.T) {
	repo := setupDocRepo(t)

	_, err := repo.UpdateDocuments(context.Background(), &core.DocumentRecord{Id: "ghost"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteDocuments(t *testing.T) {
	repo := setupDocRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.DocumentRecord{
		SourcePath: "/data/gone.txt",
		Path:       core.RouteText,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDocuments(ctx, added[0].Id))

	_, err = repo.GetDocument(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = repo.FindDocumentBySourcePath(ctx, "/data/gone.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteDocuments_NotFound(t *testing.T) {
	repo := setupDocRepo(t)

	err := repo.DeleteDocuments(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListDocuments(t *testing.T) {
	repo := setupDocRepo(t)
	ctx := context.Background()

	list, err := repo.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.AddDocuments(ctx,
		&core.DocumentRecord{SourcePath: "/a.txt", Path: core.RouteText},
		&core.DocumentRecord{SourcePath: "/b.txt", Path: core.RouteText},
		&core.DocumentRecord{SourcePath: "/c.pdf", Path: core.RouteOCR},
	)
	require.NoError(t, err)

	list, err = repo.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
