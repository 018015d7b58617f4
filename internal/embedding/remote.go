package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RemoteEmbedder calls an OpenAI-compatible embeddings endpoint
// (LM Studio, Ollama, vLLM, text-embeddings-inference, etc.).
//
// It never returns an error past its boundary: transport failures, bad
// statuses, and malformed responses are logged and degrade to a zero vector
// of the configured dimension, so ingestion and retrieval keep working
// through transient backend outages.
type RemoteEmbedder struct {
	url    string // e.g. "http://localhost:1234"
	model  string // e.g. "text-embedding-nomic-embed-text-v1.5"
	dim    int
	client *http.Client
	logger *slog.Logger
}

// Compile-time check: *RemoteEmbedder satisfies the Embedder interface.
var _ Embedder = (*RemoteEmbedder)(nil)

// NewRemoteEmbedder creates an embedder that calls the given endpoint.
func NewRemoteEmbedder(url, model string, dim int, logger *slog.Logger) *RemoteEmbedder {
	return &RemoteEmbedder{
		url:   url,
		model: model,
		dim:   dim,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

func (e *RemoteEmbedder) Dimension() int {
	return e.dim
}

// Embed returns the embedding for text, or a zero vector when the backend
// is unreachable or returns an unusable response.
func (e *RemoteEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.call(ctx, []string{text})
	if err != nil {
		e.logger.Error("embedding backend unavailable, using zero vector", "error", err)
		return zeroVector(e.dim), nil
	}
	return vectors[0], nil
}

// EmbedBatch embeds all texts in one request. On failure every text degrades
// to a zero vector.
func (e *RemoteEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	vectors, err := e.call(ctx, texts)
	if err != nil {
		e.logger.Error("embedding backend unavailable, using zero vectors",
			"error", err,
			"count", len(texts),
		)
		vectors = make([][]float32, len(texts))
		for i := range vectors {
			vectors[i] = zeroVector(e.dim)
		}
	}
	return vectors, nil
}

// ============================================================================
// Backend communication
// ============================================================================

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// call sends a single request to the embeddings endpoint and returns one
// vector per input, in input order.
func (e *RemoteEmbedder) call(ctx context.Context, inputs []string) ([][]float32, error) {
	jsonData, err := json.Marshal(embeddingRequest{Model: e.model, Input: inputs})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url+"/v1/embeddings", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding backend returned status %d", resp.StatusCode)
	}

	var embResp embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}

	if len(embResp.Data) != len(inputs) {
		return nil, fmt.Errorf("embedding backend returned %d vectors for %d inputs", len(embResp.Data), len(inputs))
	}

	vectors := make([][]float32, len(inputs))
	for _, d := range embResp.Data {
		if d.Index < 0 || d.Index >= len(inputs) {
			return nil, fmt.Errorf("embedding backend returned out-of-range index %d", d.Index)
		}
		if len(d.Embedding) != e.dim {
			return nil, fmt.Errorf("embedding backend returned %d dimensions, expected %d", len(d.Embedding), e.dim)
		}
		vectors[d.Index] = d.Embedding
	}
	for i, v := range vectors {
		if v == nil {
			return nil, fmt.Errorf("embedding backend returned no vector for input %d", i)
		}
	}
	return vectors, nil
}
