package search

import (
	"context"
	"log/slog"

	"github.com/hatmanstack/docpipe/ai"
	"github.com/hatmanstack/docpipe/core"
	"github.com/hatmanstack/docpipe/storage"
)

// defaultMinSimilarity is the cosine similarity floor for search hits.
const defaultMinSimilarity = 0.60

// Searcher provides semantic search over chunk records.
type Searcher struct {
	chunkRepository storage.ChunkRepository
	embedder        ai.Embedder
	minSimilarity   float32
	logger          *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMinSimilarity sets the similarity threshold for search hits.
// Default is 0.60.
func WithMinSimilarity(min float32) Option {
	return func(s *Searcher) error {
		s.minSimilarity = min
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	chunkRepository storage.ChunkRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		chunkRepository: chunkRepository,
		embedder:        provider.Embedder(),
		minSimilarity:   defaultMinSimilarity,
		logger:          slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar searches for chunk records similar to the query.
// Returns up to maxHits results, ranked by similarity score descending.
func (s *Searcher) FindSimilar(ctx context.Context, query string, maxHits int) ([]*core.SearchResult, error) {
	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	results, err := s.chunkRepository.FindSimilar(ctx, embedding, s.minSimilarity, maxHits)
	if err != nil {
		s.logger.Error("error querying for similar records", "err", err)
		return nil, err
	}

	s.logger.Debug("search complete", "query", query, "hits", len(results))
	return results, nil
}
