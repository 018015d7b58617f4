package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gradeassist/backend/internal/domain/assignment"
	"github.com/gradeassist/backend/internal/embedding"
	"github.com/gradeassist/backend/internal/retriever"
	"github.com/gradeassist/backend/internal/service"
	"github.com/gradeassist/backend/internal/store"
	"github.com/gradeassist/backend/internal/vectorindex"
)

func newSolutionService(fs *fakeStore, idx vectorindex.Index) *service.SolutionService {
	r := retriever.New(embedding.NewHashingEmbedder(64), idx, discardLogger(), 100, 20)
	return service.NewSolutionService(fs, r, discardLogger())
}

func TestCreateSolution_ShortTextEmbeddedWhole(t *testing.T) {
	fs := newFakeStore()
	ctx := context.Background()
	a := assignment.New("งาน", 10)
	fs.SaveAssignment(ctx, a)

	idx := vectorindex.NewMemory(64)
	ss := newSolutionService(fs, idx)

	sol, err := ss.CreateSolution(ctx, a.ID, "เฉลยสั้น")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if sol.VectorID == nil || !strings.HasPrefix(*sol.VectorID, "sol_") {
		t.Errorf("expected sol_ vector back-reference, got %v", sol.VectorID)
	}
	if idx.Len() != 1 {
		t.Errorf("expected 1 embedding record, got %d", idx.Len())
	}

	stored, _ := fs.GetSolution(ctx, sol.ID)
	if stored.VectorID == nil || *stored.VectorID != *sol.VectorID {
		t.Errorf("vector id not persisted on the row")
	}
}

func TestCreateSolution_LongTextChunked(t *testing.T) {
	fs := newFakeStore()
	ctx := context.Background()
	a := assignment.New("งาน", 10)
	fs.SaveAssignment(ctx, a)

	idx := vectorindex.NewMemory(64)
	ss := newSolutionService(fs, idx)

	longText := strings.Repeat("คำอธิบายโดยละเอียด ", 30) // well past the 100-rune threshold

	_, err := ss.CreateSolution(ctx, a.ID, longText)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if idx.Len() < 2 {
		t.Errorf("expected chunked embedding records, got %d", idx.Len())
	}
}

func TestCreateSolution_UnknownAssignment(t *testing.T) {
	fs := newFakeStore()
	ss := newSolutionService(fs, vectorindex.NewMemory(64))

	_, err := ss.CreateSolution(context.Background(), "missing", "text")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateSolution_IndexDownStillPersistsRow(t *testing.T) {
	fs := newFakeStore()
	ctx := context.Background()
	a := assignment.New("งาน", 10)
	fs.SaveAssignment(ctx, a)

	ss := newSolutionService(fs, failingIndex{})

	sol, err := ss.CreateSolution(ctx, a.ID, "เฉลย")
	if err != nil {
		t.Fatalf("expected degraded create to succeed, got %v", err)
	}
	if sol.VectorID != nil {
		t.Error("expected no vector back-reference when index is down")
	}
	if _, err := fs.GetSolution(ctx, sol.ID); err != nil {
		t.Errorf("solution row must exist, got %v", err)
	}
}

func TestDeleteSolution_RemovesEmbedding(t *testing.T) {
	fs := newFakeStore()
	ctx := context.Background()
	a := assignment.New("งาน", 10)
	fs.SaveAssignment(ctx, a)

	idx := vectorindex.NewMemory(64)
	ss := newSolutionService(fs, idx)

	sol, err := ss.CreateSolution(ctx, a.ID, "เฉลย")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := ss.DeleteSolution(ctx, sol.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := fs.GetSolution(ctx, sol.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected row gone, got %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("expected embedding record removed, got %d", idx.Len())
	}
}

func TestDeleteSolution_RemovesAllChunkEmbeddings(t *testing.T) {
	fs := newFakeStore()
	ctx := context.Background()
	a := assignment.New("งาน", 10)
	fs.SaveAssignment(ctx, a)

	idx := vectorindex.NewMemory(64)
	ss := newSolutionService(fs, idx)

	longText := strings.Repeat("คำอธิบายโดยละเอียด ", 30)

	sol, err := ss.CreateSolution(ctx, a.ID, longText)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if idx.Len() < 2 {
		t.Fatalf("expected chunked embedding records, got %d", idx.Len())
	}

	if err := ss.DeleteSolution(ctx, sol.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("owning solution deleted, but %d chunk embedding records remain", idx.Len())
	}
}

// failingIndex simulates an unreachable vector backend.
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
