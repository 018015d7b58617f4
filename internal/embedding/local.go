package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// HashingEmbedder is the local-model variant: a deterministic bag-of-words
// feature-hashing embedder that needs no external process. Semantically it is
// far weaker than a trained model, but it is dimension-compatible with the
// remote variant, fully offline, and good enough for development and tests.
type HashingEmbedder struct {
	dim int
}

var _ Embedder = (*HashingEmbedder)(nil)

// NewHashingEmbedder creates a local embedder producing dim-sized vectors.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	return &HashingEmbedder{dim: dim}
}

func (e *HashingEmbedder) Dimension() int {
	return e.dim
}

// Embed hashes each token onto a dimension and L2-normalizes the result.
// Identical texts always produce identical vectors.
func (e *HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		sum := h.Sum32()
		idx := int(sum % uint32(e.dim))
		// The next hash bit decides sign so common tokens don't all
		// push the same direction.
		if sum&0x80000000 != 0 {
			vec[idx] -= 1
		} else {
			vec[idx] += 1
		}
	}
	normalize(vec)
	return vec, nil
}

func (e *HashingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
