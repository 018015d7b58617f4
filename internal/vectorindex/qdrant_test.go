package vectorindex_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gradeassist/backend/internal/vectorindex"
)

// fakeQdrant imitates the subset of the Qdrant REST API the client uses.
type fakeQdrant struct {
	collections map[string]bool
	points      map[string][]float32
	payloads    map[string]map[string]any
	lastAPIKey  string
}

func newFakeQdrant() *fakeQdrant {
	return &fakeQdrant{
		collections: make(map[string]bool),
		points:      make(map[string][]float32),
		payloads:    make(map[string]map[string]any),
	}
}

func (f *fakeQdrant) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /collections/{name}", func(w http.ResponseWriter, r *http.Request) {
		f.lastAPIKey = r.Header.Get("api-key")
		if !f.collections[r.PathValue("name")] {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"result":{}}`))
	})

	mux.HandleFunc("PUT /collections/{name}", func(w http.ResponseWriter, r *http.Request) {
		f.collections[r.PathValue("name")] = true
		w.Write([]byte(`{"result":true}`))
	})

	mux.HandleFunc("PUT /collections/{name}/points", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Points []struct {
				ID      string         `json:"id"`
				Vector  []float32      `json:"vector"`
				Payload map[string]any `json:"payload"`
			} `json:"points"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad upsert body: %v", err)
		}
		for _, p := range req.Points {
			f.points[p.ID] = p.Vector
			f.payloads[p.ID] = p.Payload
		}
		w.Write([]byte(`{"result":{"status":"completed"}}`))
	})

	mux.HandleFunc("POST /collections/{name}/points/search", func(w http.ResponseWriter, r *http.Request) {
		type hit struct {
			ID      any            `json:"id"`
			Score   float32        `json:"score"`
			Payload map[string]any `json:"payload"`
		}
		hits := []hit{}
		for id := range f.points {
			hits = append(hits, hit{ID: id, Score: 0.93, Payload: f.payloads[id]})
		}
		json.NewEncoder(w).Encode(map[string]any{"result": hits})
	})

	mux.HandleFunc("POST /collections/{name}/points/delete", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Points []string `json:"points"`
			Filter *struct {
				Must []struct {
					Key   string `json:"key"`
					Match struct {
						Value string `json:"value"`
					} `json:"match"`
				} `json:"must"`
			} `json:"filter"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		for _, id := range req.Points {
			delete(f.points, id)
		}
		if req.Filter != nil {
			for id, payload := range f.payloads {
				matched := true
				for _, cond := range req.Filter.Must {
					if payload[cond.Key] != cond.Match.Value {
						matched = false
						break
					}
				}
				if matched {
					delete(f.points, id)
					delete(f.payloads, id)
				}
			}
		}
		w.Write([]byte(`{"result":{"status":"completed"}}`))
	})

	return mux
}

func TestQdrant_EnsureCollectionCreatesOnce(t *testing.T) {
	fake := newFakeQdrant()
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	q := vectorindex.NewQdrant(server.URL, "secret", "solution_embeddings", 3)
	ctx := context.Background()

	if err := q.EnsureCollection(ctx); err != nil {
		t.Fatalf("first ensure failed: %v", err)
	}
	if !fake.collections["solution_embeddings"] {
		t.Fatal("collection was not created")
	}
	if err := q.EnsureCollection(ctx); err != nil {
		t.Fatalf("ensure on existing collection failed: %v", err)
	}
	if fake.lastAPIKey != "secret" {
		t.Errorf("api-key header not sent, got %q", fake.lastAPIKey)
	}
}

func TestQdrant_UpsertQueryDelete(t *testing.T) {
	fake := newFakeQdrant()
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	q := vectorindex.NewQdrant(server.URL, "", "solution_embeddings", 3)
	ctx := context.Background()

	err := q.Upsert(ctx, "sol_1", []float32{1, 2, 3}, map[string]any{"solution_id": "s1", "type": "solution"})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	matches, err := q.Query(ctx, []float32{1, 2, 3}, 5)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "sol_1" {
		t.Fatalf("unexpected matches: %v", matches)
	}
	if matches[0].Payload["solution_id"] != "s1" {
		t.Errorf("payload lost in round trip: %v", matches[0].Payload)
	}

	if err := q.Delete(ctx, "sol_1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(fake.points) != 0 {
		t.Errorf("point not deleted")
	}
}

func TestQdrant_DeleteByPayloadRemovesTaggedPoints(t *testing.T) {
	fake := newFakeQdrant()
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	q := vectorindex.NewQdrant(server.URL, "", "solution_embeddings", 3)
	ctx := context.Background()

	for i, id := range []string{"chunk_1", "chunk_2", "sol_other"} {
		sid := "s1"
		if id == "sol_other" {
			sid = "s2"
		}
		err := q.Upsert(ctx, id, []float32{float32(i), 1, 2}, map[string]any{"solution_id": sid})
		if err != nil {
			t.Fatalf("upsert %s failed: %v", id, err)
		}
	}

	if err := q.DeleteByPayload(ctx, "solution_id", "s1"); err != nil {
		t.Fatalf("filtered delete failed: %v", err)
	}
	if len(fake.points) != 1 {
		t.Fatalf("expected only the other solution's point, got %d", len(fake.points))
	}
	if _, ok := fake.points["sol_other"]; !ok {
		t.Error("filtered delete removed a point belonging to another solution")
	}
}

func TestQdrant_UpsertDimensionMismatch(t *testing.T) {
	q := vectorindex.NewQdrant("http://localhost:0", "", "c", 1536)

	err := q.Upsert(context.Background(), "sol_1", []float32{1, 2, 3}, nil)
	if !errors.Is(err, vectorindex.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestQdrant_QueryUnreachableReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	q := vectorindex.NewQdrant(server.URL, "", "c", 2)

	_, err := q.Query(context.Background(), []float32{1, 2}, 5)
	if err == nil {
		t.Error("expected transport error from index layer (retriever degrades it, not the index)")
	}
}
