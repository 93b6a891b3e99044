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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/hatmanstack/docpipe"
	"github.com/hatmanstack/docpipe/ai"
	"github.com/hatmanstack/docpipe/ai/openai"
	"github.com/hatmanstack/docpipe/chunker"
	"github.com/hatmanstack/docpipe/extract"
	"github.com/hatmanstack/docpipe/pipeline"
	"github.com/hatmanstack/docpipe/reembed"
	"github.com/hatmanstack/docpipe/storage/badger"
)

func main() {
	// Optional .env file; missing is fine
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "docpipe",
		Usage: "Document ingestion pipeline with semantic chunking",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest documents: extract, classify, chunk, embed, and store",
				ArgsUsage: "FILE [FILE...]",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "Directory vector output is written under",
						Value: ".",
					},
				},
			},
			{
				Name:      "chunk",
				Usage:     "Extract and chunk a document without storing anything",
				ArgsUsage: "FILE",
				Action:    chunkCommand,
			},
			{
				Name:      "search",
				Usage:     "Search stored chunks by semantic similarity",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Maximum number of results to return",
						Value: 5,
					},
				},
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all chunk records with new embeddings",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	aiConfig, err := ai.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := docpipe.NewDatabase(c.String("db"), docpipe.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	p, err := db.NewPipeline(pipeline.WithOutputDir(c.String("out")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	for _, path := range c.Args().Slice() {
		doc, err := p.Process(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}
		fmt.Printf("%s: %q class=%s chunks=%d vectors=%s\n",
			path, doc.Title, doc.Class, doc.ChunkCount, doc.VectorURI)
	}

	return nil
}

func chunkCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("exactly one input file is required")
	}
	path := c.Args().First()

	registry := extract.NewDefaultRegistry()
	content, err := registry.Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", path, err)
	}

	chunks := chunker.Split(content)
	if title := extract.Title(path, content); title != "" {
		fmt.Printf("Title: %s\n", title)
	}
	fmt.Printf("Found %d chunks\n", len(chunks))
	for i, chunk := range chunks {
		fmt.Printf("%d: [%s] %q (header %q)\n", i, chunk.Type, chunk.Content, chunk.Header)
	}

	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() == 0 {
		return fmt.Errorf("a query is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	aiConfig, err := ai.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := docpipe.NewDatabase(c.String("db"), docpipe.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	results, err := searcher.FindSimilar(ctx, query, c.Int("max-hits"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' (%d)[%0.3f]\n", i, hit.Record.Content, hit.Record.Id, hit.Score)
	}

	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	// Validate flags
	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}

	// Open database
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create document repository: %w", err)
	}
	defer docRepo.Close()

	chunkRepo, err := badger.NewChunkRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create chunk repository: %w", err)
	}
	defer chunkRepo.Close()

	// Create AI config
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		// Use dummy classifier values (not needed for reembedding)
		ai.WithClassifierHost(c.String("embedding-host")),
		ai.WithClassifierModel("dummy"),
	)

	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	// Create embedder
	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	// Create reembedding config
	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
	}

	// Validate config
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}

	// Create reembedder
	reembedder := reembed.NewReembedder(docRepo, chunkRepo, embedder, reembedConfig, os.Stderr)

	// Run reembedding
	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
