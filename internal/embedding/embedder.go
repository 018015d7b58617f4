// Package embedding turns text into fixed-dimension vectors via a pluggable
// backend. The remote and local variants are interchangeable behind the
// Embedder interface.
package embedding

import "context"

// Embedder produces vector embeddings for text.
// Implementations may call a remote inference endpoint or run a local model.
type Embedder interface {
	// Embed generates an embedding vector for a single text input.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embedding vectors for multiple text inputs,
	// in the same order as the input texts.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the dimensionality of the embedding vectors.
	Dimension() int
}

// zeroVector is the degraded placeholder returned when a backend is
// unreachable. A zero vector is never the nearest neighbor of real content,
// so downstream retrieval quality degrades instead of crashing.
func zeroVector(dim int) []float32 {
	return make([]float32, dim)
}
