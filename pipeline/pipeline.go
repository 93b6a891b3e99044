package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/hatmanstack/docpipe/ai"
	"github.com/hatmanstack/docpipe/chunker"
	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/extract"
	"github.com/hatmanstack/docpipe/router"
	"github.com/hatmanstack/docpipe/storage"
	"github.com/panjf2000/ants/v2"
)

// defaultBatchSize is the number of chunks embedded per request.
const defaultBatchSize = 16

// Pipeline orchestrates the ingestion and processing of documents.
// It manages routing, extraction, classification, chunking, embedding,
// and vector output for each document.
type Pipeline struct {
	documentRepository storage.DocumentRepository
	chunkRepository    storage.ChunkRepository
	provider           ai.AIProvider
	router             *router.Router
	registry           *extract.Registry
	embeddingPool      *ants.Pool
	batchSize          int
	outputDir          string
	logger             *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding batches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.embeddingPool = pool
		return nil
	}
}

// WithBatchSize sets the number of chunks embedded per request.
// Default is 16.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithOutputDir sets the directory vector output is written under.
// Default is the current working directory.
func WithOutputDir(dir string) Option {
	return func(p *Pipeline) error {
		p.outputDir = dir
		return nil
	}
}

// WithRouter sets a custom document router.
func WithRouter(r *router.Router) Option {
	return func(p *Pipeline) error {
		if r != nil {
			p.router = r
		}
		return nil
	}
}

// WithRegistry sets a custom extractor registry.
func WithRegistry(reg *extract.Registry) Option {
	return func(p *Pipeline) error {
		if reg != nil {
			p.registry = reg
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new document pipeline.
func NewPipeline(
	documentRepository storage.DocumentRepository,
	chunkRepository storage.ChunkRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if documentRepository == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documentRepository: documentRepository,
		chunkRepository:    chunkRepository,
		provider:           provider,
		router:             router.NewRouter(),
		registry:           extract.NewDefaultRegistry(),
		embeddingPool:      pool,
		batchSize:          defaultBatchSize,
		outputDir:          ".",
		logger:             slog.Default().With("component", "pipeline"),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Process ingests a single document through every pipeline stage and
// returns its finished document record. A document routed to optical
// recognition fails with ErrOCRPathNotSupported. Any stage failure fails
// the document as a whole.
func (p *Pipeline) Process(ctx context.Context, path string) (*core.DocumentRecord, error) {
	route := p.router.Route(path)
	p.logger.Info("routed document", "path", path, "route", route.String())

	if route != core.RouteText {
		return nil, fmt.Errorf("%w: %s", ErrOCRPathNotSupported, path)
	}

	text, err := p.registry.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	class, err := p.provider.Classifier().ClassifyDocument(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("classifying %s: %w", path, err)
	}
	p.logger.Info("classified document", "path", path, "class", class.Label, "confidence", class.Confidence)

	chunks := chunker.Split(text)
	p.logger.Info("chunked document", "path", path, "chunks", len(chunks))

	doc := &core.DocumentRecord{
		Id:         core.NewDocumentID(),
		SourcePath: path,
		Path:       route,
		Class:      class.Label,
		Title:      extract.Title(path, text),
		ChunkCount: len(chunks),
	}
	if _, err := p.documentRepository.AddDocuments(ctx, doc); err != nil {
		return nil, fmt.Errorf("persisting document record: %w", err)
	}

	if len(chunks) == 0 {
		p.logger.Warn("document produced no chunks", "path", path)
		return doc, nil
	}

	records := make([]*core.ChunkRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = core.NewChunkRecord(doc.Id, i, chunk)
	}
	if _, err := p.chunkRepository.AddChunkRecords(ctx, records...); err != nil {
		return nil, fmt.Errorf("persisting chunk records: %w", err)
	}

	if err := p.embedRecords(ctx, records); err != nil {
		return nil, err
	}

	if _, err := p.chunkRepository.UpdateChunkRecords(ctx, records...); err != nil {
		return nil, fmt.Errorf("storing embeddings: %w", err)
	}

	vectorURI, err := writeVectors(p.outputDir, doc, records)
	if err != nil {
		return nil, fmt.Errorf("writing vector output: %w", err)
	}

	doc.VectorURI = vectorURI
	if _, err := p.documentRepository.UpdateDocuments(ctx, doc); err != nil {
		return nil, fmt.Errorf("finalizing document record: %w", err)
	}

	p.logger.Info("processed document", "path", path, "document", doc.Id, "vectors", vectorURI)
	return doc, nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
