package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/hatmanstack/docpipe/core"
)

// embedRecords generates embeddings for the given chunk records, in batches
// of p.batchSize submitted to the worker pool. Each batch's vectors are
// attached to its records in place. A count mismatch between a batch and
// its embedding result fails the whole document.
func (p *Pipeline) embedRecords(ctx context.Context, records []*core.ChunkRecord) error {
	p.logger.Debug("generating embeddings for chunk records", "records", len(records), "batch", p.batchSize)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for start := 0; start < len(records); start += p.batchSize {
		end := start + p.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		wg.Add(1)
		submitErr := p.embeddingPool.Submit(func() {
			defer wg.Done()
			if err := p.embedBatch(ctx, batch); err != nil {
				setErr(err)
			}
		})
		if submitErr != nil {
			wg.Done()
			setErr(submitErr)
			break
		}
	}

	wg.Wait()
	return firstErr
}

// embedBatch embeds one batch of chunk records.
func (p *Pipeline) embedBatch(ctx context.Context, batch []*core.ChunkRecord) error {
	texts := make([]string, len(batch))
	for i, record := range batch {
		texts[i] = record.Content
	}

	embeddings, err := p.provider.Embedder().EmbedTexts(ctx, texts)
	if err != nil {
		p.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(batch) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(embeddings))
	}

	for i := range embeddings {
		batch[i].Vector = embeddings[i]
	}

	return nil
}
