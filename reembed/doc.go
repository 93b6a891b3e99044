// Package reembed provides functionality for reembedding existing chunk
// records with new or updated embedding models.
//
// This package supports batch processing of chunk records in document order,
// progress tracking, and vector normalization to ensure compatibility with
// cosine similarity search.
package reembed
