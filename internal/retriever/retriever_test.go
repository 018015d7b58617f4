package retriever_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gradeassist/backend/internal/embedding"
	"github.com/gradeassist/backend/internal/retriever"
	"github.com/gradeassist/backend/internal/vectorindex"
)

func newTestRetriever(t *testing.T, idx vectorindex.Index) *retriever.Retriever {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return retriever.New(embedding.NewHashingEmbedder(64), idx, logger, 100, 20)
}

func TestStoreSolution_RoundTrip(t *testing.T) {
	idx := vectorindex.NewMemory(64)
	r := newTestRetriever(t, idx)
	ctx := context.Background()

	vectorID, err := r.StoreSolution(ctx, "solution-1", "photosynthesis converts light into chemical energy", nil)
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !strings.HasPrefix(vectorID, "sol_") {
		t.Errorf("expected sol_ prefixed vector id, got %q", vectorID)
	}

	matches := r.FindSimilar(ctx, "how does photosynthesis turn light into energy", 5)
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].Payload[retriever.PayloadSolutionID] != "solution-1" {
		t.Errorf("expected solution_id payload, got %v", matches[0].Payload)
	}
	if matches[0].Payload[retriever.PayloadType] != "solution" {
		t.Errorf("expected type=solution payload, got %v", matches[0].Payload)
	}
}

func TestStoreSolutionChunks_MetadataAndOrder(t *testing.T) {
	idx := vectorindex.NewMemory(64)
	r := newTestRetriever(t, idx)
	ctx := context.Background()

	longText := strings.Repeat("the krebs cycle produces energy carriers. ", 20)

	vectorIDs, err := r.StoreSolutionChunks(ctx, "solution-2", longText, map[string]any{"assignment_id": "a1"})
	if err != nil {
		t.Fatalf("chunked store failed: %v", err)
	}
	if len(vectorIDs) < 2 {
		t.Fatalf("expected multiple chunk records, got %d", len(vectorIDs))
	}
	for i, vid := range vectorIDs {
		if !strings.HasPrefix(vid, "chunk_") {
			t.Errorf("chunk %d: expected chunk_ prefixed id, got %q", i, vid)
		}
	}
	if idx.Len() != len(vectorIDs) {
		t.Errorf("index holds %d records, expected %d", idx.Len(), len(vectorIDs))
	}

	// Every stored record must carry its position metadata.
	matches := r.FindSimilar(ctx, "krebs cycle energy", len(vectorIDs))
	seen := map[int]bool{}
	for _, m := range matches {
		total, ok := m.Payload[retriever.PayloadTotalChunks].(int)
		if !ok || total != len(vectorIDs) {
			t.Errorf("bad total_chunks payload: %v", m.Payload[retriever.PayloadTotalChunks])
		}
		if m.Payload["assignment_id"] != "a1" {
			t.Errorf("caller metadata lost: %v", m.Payload)
		}
		if ci, ok := m.Payload[retriever.PayloadChunkIndex].(int); ok {
			seen[ci] = true
		}
	}
	if len(seen) != len(vectorIDs) {
		t.Errorf("expected %d distinct chunk indexes, saw %d", len(vectorIDs), len(seen))
	}
}

func TestFindSimilar_EmptyIndex(t *testing.T) {
	r := newTestRetriever(t, vectorindex.NewMemory(64))

	matches := r.FindSimilar(context.Background(), "anything", 5)
	if len(matches) != 0 {
		t.Errorf("expected no matches from empty index, got %d", len(matches))
	}
}

// failingIndex simulates an unreachable backend.
type failingIndex struct{}

func (failingIndex) EnsureCollection(context.Context) error { return errors.New("connection refused") }
func (failingIndex) Upsert(context.Context, string, []float32, map[string]any) error {
	return errors.New("connection refused")
}
func (failingIndex) Query(context.Context, []float32, int) ([]vectorindex.Match, error) {
	return nil, errors.New("connection refused")
}
func (failingIndex) Delete(context.Context, string) error { return errors.New("connection refused") }
func (failingIndex) DeleteByPayload(context.Context, string, string) error {
	return errors.New("connection refused")
}

func TestFindSimilar_BackendDownReturnsEmpty(t *testing.T) {
	r := newTestRetriever(t, failingIndex{})

	matches := r.FindSimilar(context.Background(), "anything", 5)
	if matches != nil {
		t.Errorf("expected nil matches when backend is down, got %v", matches)
	}
}

func TestDelete_ReportsOutcome(t *testing.T) {
	ctx := context.Background()
	idx := vectorindex.NewMemory(64)
	r := newTestRetriever(t, idx)

	vectorID, _ := r.StoreSolution(ctx, "solution-3", "some text", nil)
	if !r.Delete(ctx, vectorID) {
		t.Error("expected delete to succeed")
	}
	if idx.Len() != 0 {
		t.Error("record still present after delete")
	}

	down := newTestRetriever(t, failingIndex{})
	if down.Delete(ctx, "sol_x") {
		t.Error("expected delete against dead backend to report failure")
	}
}

func TestDeleteSolutionRecords_RemovesWholeAndChunkVectors(t *testing.T) {
	ctx := context.Background()
	idx := vectorindex.NewMemory(64)
	r := newTestRetriever(t, idx)

	longText := strings.Repeat("the krebs cycle produces energy carriers. ", 20)
	if _, err := r.StoreSolutionChunks(ctx, "solution-4", longText, nil); err != nil {
		t.Fatalf("chunked store failed: %v", err)
	}
	if _, err := r.StoreSolution(ctx, "solution-5", "unrelated reference answer", nil); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	before := idx.Len()
	if before < 3 {
		t.Fatalf("expected chunk records plus one whole record, got %d", before)
	}

	if !r.DeleteSolutionRecords(ctx, "solution-4") {
		t.Error("expected tagged delete to succeed")
	}
	if idx.Len() != 1 {
		t.Errorf("expected only the other solution's record to remain, got %d", idx.Len())
	}

	down := newTestRetriever(t, failingIndex{})
	if down.DeleteSolutionRecords(ctx, "solution-4") {
		t.Error("expected tagged delete against dead backend to report failure")
	}
}
