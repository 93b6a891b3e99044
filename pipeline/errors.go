package pipeline

import "errors"

var (
	// ErrDocumentRepositoryRequired is returned when a document repository is not provided.
	ErrDocumentRepositoryRequired = errors.New("document repository required")

	// ErrChunkRepositoryRequired is returned when a chunk repository is not provided.
	ErrChunkRepositoryRequired = errors.New("chunk repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrOCRPathNotSupported is returned for documents routed to optical
	// recognition. The OCR stage runs outside this pipeline; such documents
	// must be converted to a text format before ingestion.
	ErrOCRPathNotSupported = errors.New("document requires OCR, which is not supported by this pipeline")
)
