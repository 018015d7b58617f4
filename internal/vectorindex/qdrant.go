package vectorindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Qdrant stores embeddings in a Qdrant collection via its REST API.
type Qdrant struct {
	url        string // e.g. "http://localhost:6333"
	apiKey     string // optional
	collection string
	dim        int
	client     *http.Client
}

// Compile-time check: *Qdrant satisfies the Index interface.
var _ Index = (*Qdrant)(nil)

// NewQdrant creates a client for one collection. The collection itself is
// created lazily by EnsureCollection.
func NewQdrant(url, apiKey, collection string, dim int) *Qdrant {
	return &Qdrant{
		url:        url,
		apiKey:     apiKey,
		collection: collection,
		dim:        dim,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// EnsureCollection creates the collection with cosine distance if absent.
func (q *Qdrant) EnsureCollection(ctx context.Context) error {
	// A GET on the collection tells us whether it exists.
	status, _, err := q.do(ctx, http.MethodGet, "/collections/"+q.collection, nil)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"vectors": map[string]any{
			"size":     q.dim,
			"distance": "Cosine",
		},
	}
	status, _, err = q.do(ctx, http.MethodPut, "/collections/"+q.collection, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant: create collection returned status %d", status)
	}
	return nil
}

// Upsert inserts or replaces the point at id.
func (q *Qdrant) Upsert(ctx context.Context, id string, vector []float32, payload map[string]any) error {
	if len(vector) != q.dim {
		return fmt.Errorf("%w: got %d, collection expects %d", ErrDimensionMismatch, len(vector), q.dim)
	}

	body := map[string]any{
		"points": []map[string]any{
			{
				"id":      id,
				"vector":  vector,
				"payload": payload,
			},
		},
	}
	status, _, err := q.do(ctx, http.MethodPut, "/collections/"+q.collection+"/points?wait=true", body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant: upsert returned status %d", status)
	}
	return nil
}

// Query runs a nearest-neighbor search, most similar first.
func (q *Qdrant) Query(ctx context.Context, vector []float32, limit int) ([]Match, error) {
	if len(vector) != q.dim {
		return nil, fmt.Errorf("%w: got %d, collection expects %d", ErrDimensionMismatch, len(vector), q.dim)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	body := map[string]any{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}
	status, respBody, err := q.do(ctx, http.MethodPost, "/collections/"+q.collection+"/points/search", body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("qdrant: search returned status %d", status)
	}

	var resp struct {
		Result []struct {
			ID      any            `json:"id"`
			Score   float32        `json:"score"`
			Payload map[string]any `json:"payload"`
		} `json:"result"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("qdrant: failed to decode search response: %w", err)
	}

	matches := make([]Match, 0, len(resp.Result))
	for _, r := range resp.Result {
		matches = append(matches, Match{
			ID:      fmt.Sprint(r.ID),
			Score:   r.Score,
			Payload: r.Payload,
		})
	}
	return matches, nil
}

// Delete removes a point by id. Unknown ids are accepted silently.
func (q *Qdrant) Delete(ctx context.Context, id string) error {
	body := map[string]any{
		"points": []string{id},
	}
	status, _, err := q.do(ctx, http.MethodPost, "/collections/"+q.collection+"/points/delete?wait=true", body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant: delete returned status %d", status)
	}
	return nil
}

// DeleteByPayload removes all points whose payload matches key=value,
// using Qdrant's filtered delete.
func (q *Qdrant) DeleteByPayload(ctx context.Context, key, value string) error {
	body := map[string]any{
		"filter": map[string]any{
			"must": []map[string]any{
				{
					"key":   key,
					"match": map[string]any{"value": value},
				},
			},
		},
	}
	status, _, err := q.do(ctx, http.MethodPost, "/collections/"+q.collection+"/points/delete?wait=true", body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant: filtered delete returned status %d", status)
	}
	return nil
}

// do sends one request and returns the status code and raw body.
func (q *Qdrant) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("qdrant: failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, q.url+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("qdrant: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if q.apiKey != "" {
		req.Header.Set("api-key", q.apiKey)
	}

	resp, err := q.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("qdrant: request failed: %w", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return 0, nil, fmt.Errorf("qdrant: failed to read response: %w", err)
	}
	return resp.StatusCode, buf.Bytes(), nil
}
