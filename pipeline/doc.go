// Package pipeline orchestrates document ingestion end to end.
//
// The Pipeline type manages the processing workflow for a document, including:
//   - Routing to a processing path based on format
//   - Extracting text and a display title
//   - Classifying the document type
//   - Splitting text into semantic chunks
//   - Generating embeddings in concurrent batches
//   - Persisting records and writing vector output
//
// Embedding batches are processed concurrently using a worker pool to maximize
// throughput. A document either completes every stage or fails as a whole;
// partial vector output is never reported as success.
package pipeline
