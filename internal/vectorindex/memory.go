package vectorindex

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Memory is an in-process Index used in tests and offline development.
// It performs exact cosine search over all stored records.
type Memory struct {
	dim int

	mu      sync.RWMutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	vector  []float32
	payload map[string]any
}

var _ Index = (*Memory)(nil)

// NewMemory creates an empty in-memory index for dim-sized vectors.
func NewMemory(dim int) *Memory {
	return &Memory{
		dim:     dim,
		records: make(map[string]memoryRecord),
	}
}

// EnsureCollection is a no-op: the collection is the struct itself.
func (m *Memory) EnsureCollection(_ context.Context) error {
	return nil
}

func (m *Memory) Upsert(_ context.Context, id string, vector []float32, payload map[string]any) error {
	if len(vector) != m.dim {
		return fmt.Errorf("%w: got %d, collection expects %d", ErrDimensionMismatch, len(vector), m.dim)
	}

	vec := make([]float32, len(vector))
	copy(vec, vector)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[id] = memoryRecord{vector: vec, payload: payload}
	return nil
}

func (m *Memory) Query(_ context.Context, vector []float32, limit int) ([]Match, error) {
	if len(vector) != m.dim {
		return nil, fmt.Errorf("%w: got %d, collection expects %d", ErrDimensionMismatch, len(vector), m.dim)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]Match, 0, len(m.records))
	for id, rec := range m.records {
		matches = append(matches, Match{
			ID:      id,
			Score:   cosineSimilarity(vector, rec.vector),
			Payload: rec.payload,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *Memory) DeleteByPayload(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, rec := range m.records {
		if v, ok := rec.payload[key].(string); ok && v == value {
			delete(m.records, id)
		}
	}
	return nil
}

// Len reports the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// cosineSimilarity returns dot(a,b) / (|a| * |b|), or 0 when either vector
// has zero magnitude (the degraded-embedding sentinel).
func cosineSimilarity(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
