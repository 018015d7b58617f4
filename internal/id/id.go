package id

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// GenerateID creates a unique 16-character alphanumeric ID for database rows.
func GenerateID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

// SolutionVectorID creates the ID under which a whole-solution embedding
// is stored in the vector index.
func SolutionVectorID() string {
	return "sol_" + uuid.NewString()
}

// ChunkVectorID creates the ID under which one chunk of a long solution
// is stored in the vector index.
func ChunkVectorID() string {
	return "chunk_" + uuid.NewString()
}
