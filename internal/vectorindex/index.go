// Package vectorindex stores (id, vector, payload) records and answers
// nearest-neighbor queries under cosine similarity.
package vectorindex

import (
	"context"
	"errors"
)

// ErrDimensionMismatch is returned when a vector's size does not match the
// collection's configured dimensionality.
var ErrDimensionMismatch = errors.New("vectorindex: vector dimension does not match collection")

// DefaultLimit bounds query results when the caller passes limit <= 0.
const DefaultLimit = 5

// Match is one nearest-neighbor result, most similar first.
type Match struct {
	ID      string
	Score   float32
	Payload map[string]any
}

// Index is a store specialized for nearest-neighbor search over embeddings.
type Index interface {
	// EnsureCollection creates the backing collection if it does not
	// exist yet. Calling it on an existing collection is a no-op.
	EnsureCollection(ctx context.Context) error

	// Upsert inserts or replaces the record at id.
	Upsert(ctx context.Context, id string, vector []float32, payload map[string]any) error

	// Query returns up to limit records ordered by cosine similarity,
	// most similar first.
	Query(ctx context.Context, vector []float32, limit int) ([]Match, error)

	// Delete removes a record. Deleting a non-existent id is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByPayload removes every record whose payload value at key
	// equals value. Matching nothing is not an error.
	DeleteByPayload(ctx context.Context, key, value string) error
}
