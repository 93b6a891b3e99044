package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Classifier assigns a document class to extracted text.
// Implementations must be thread-safe for concurrent use.
type Classifier interface {
	// ClassifyDocument reads the text of a document and returns the single
	// best-matching class from the predefined document classes, together
	// with a confidence score.
	// Returns an error if classification fails.
	ClassifyDocument(ctx context.Context, text string) (Classification, error)
}

// Classification is the result of classifying a document.
type Classification struct {
	// Label is one of the predefined document classes, lowercase.
	// Example: "invoice", "scientific publication", "memo"
	Label string

	// Confidence is the model's self-reported confidence in the label,
	// in the range 0.0 to 1.0.
	Confidence float64
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Classifier instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Classifier returns the document classification service.
	// The returned Classifier is safe for concurrent use.
	Classifier() Classifier

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
