// Copyright 2026 Hatmanstack
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package docpipe

import (
	"io"
	"log/slog"

	"github.com/hatmanstack/docpipe/ai"
	"github.com/hatmanstack/docpipe/ai/openai"
	"github.com/hatmanstack/docpipe/pipeline"
	"github.com/hatmanstack/docpipe/reembed"
	"github.com/hatmanstack/docpipe/search"
	"github.com/hatmanstack/docpipe/storage"
	"github.com/hatmanstack/docpipe/storage/badger"
)

type Database struct {
	backend   *badger.Backend
	docRepo   storage.DocumentRepository
	chunkRepo storage.ChunkRepository
	provider  ai.AIProvider
	logger    *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig overrides the default AI service configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}
	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create document repository
	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create chunk repository
	chunkRepo, err := badger.NewChunkRepository(backend)
	if err != nil {
		docRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		chunkRepo.Close()
		docRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:   backend,
		docRepo:   docRepo,
		chunkRepo: chunkRepo,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.chunkRepo.Close(); err != nil {
		db.logger.Error("error closing chunk repository", "err", err)
		return err
	}
	if err := db.docRepo.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) DocumentRepository() storage.DocumentRepository {
	return db.docRepo
}

func (db *Database) ChunkRepository() storage.ChunkRepository {
	return db.chunkRepo
}

func (db *Database) NewPipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.NewPipeline(db.docRepo, db.chunkRepo, db.provider, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.chunkRepo, db.provider, opts...)
}

func (db *Database) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(db.docRepo, db.chunkRepo, db.provider.Embedder(), config, progress)
}
