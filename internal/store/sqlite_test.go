package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gradeassist/backend/internal/domain/assignment"
	"github.com/gradeassist/backend/internal/domain/grade"
	"github.com/gradeassist/backend/internal/domain/solution"
	"github.com/gradeassist/backend/internal/domain/submission"
	"github.com/gradeassist/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedSubmission(t *testing.T, s *store.SQLiteStore) (*assignment.Assignment, *submission.Submission) {
	t.Helper()
	ctx := context.Background()

	a := assignment.New("วงจรน้ำ", 10)
	if err := s.SaveAssignment(ctx, a); err != nil {
		t.Fatalf("save assignment: %v", err)
	}
	sub := submission.New(a.ID, "น้ำระเหยแล้วกลั่นตัวเป็นฝน")
	if err := s.SaveSubmission(ctx, sub); err != nil {
		t.Fatalf("save submission: %v", err)
	}
	return a, sub
}

func TestAssignmentRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := assignment.New("ชีววิทยา ข้อ 3", 7.5)
	if err := s.SaveAssignment(ctx, a); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.GetAssignment(ctx, a.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != a.Title || got.TotalScore != 7.5 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if _, err := s.GetAssignment(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSolutionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a, _ := seedSubmission(t, s)

	sol := solution.New(a.ID, "น้ำระเหย กลั่นตัว และตกเป็นฝน")
	if err := s.SaveSolution(ctx, sol); err != nil {
		t.Fatalf("save solution: %v", err)
	}

	if err := s.SetSolutionVectorID(ctx, sol.ID, "sol_abc"); err != nil {
		t.Fatalf("set vector id: %v", err)
	}

	got, err := s.GetSolution(ctx, sol.ID)
	if err != nil {
		t.Fatalf("get solution: %v", err)
	}
	if got.VectorID == nil || *got.VectorID != "sol_abc" {
		t.Errorf("vector id not persisted: %v", got.VectorID)
	}

	if err := s.DeleteSolution(ctx, sol.ID); err != nil {
		t.Fatalf("delete solution: %v", err)
	}
	if _, err := s.GetSolution(ctx, sol.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSolutionsByAssignment_MostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a, _ := seedSubmission(t, s)

	older := solution.New(a.ID, "เฉลยเก่า")
	newer := solution.New(a.ID, "เฉลยใหม่")
	newer.CreatedAt = older.CreatedAt.Add(time.Second)

	for _, sol := range []*solution.Solution{older, newer} {
		if err := s.SaveSolution(ctx, sol); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	solutions, err := s.SolutionsByAssignment(ctx, a.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(solutions) != 2 {
		t.Fatalf("expected 2 solutions, got %d", len(solutions))
	}
	if solutions[0].ID != newer.ID {
		t.Errorf("expected most recent solution first")
	}
}

func TestCreateGradeForSubmission_TransitionsStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, sub := seedSubmission(t, s)

	g := grade.New(sub.ID, 8.5, "ดีมาก\n\nควรอธิบายเพิ่ม")
	if err := s.CreateGradeForSubmission(ctx, g); err != nil {
		t.Fatalf("create grade: %v", err)
	}

	got, _ := s.GetSubmission(ctx, sub.ID)
	if got.Status != submission.StatusGraded {
		t.Errorf("expected graded status, got %q", got.Status)
	}

	grades, _ := s.GradesBySubmission(ctx, sub.ID)
	if len(grades) != 1 {
		t.Fatalf("expected 1 grade, got %d", len(grades))
	}
	if grades[0].Approved {
		t.Error("new grade must not be approved")
	}
	if grades[0].Score != 8.5 {
		t.Errorf("expected score 8.5, got %v", grades[0].Score)
	}
}

func TestCreateGradeForSubmission_AlreadyGraded(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, sub := seedSubmission(t, s)

	if err := s.CreateGradeForSubmission(ctx, grade.New(sub.ID, 8, "ok")); err != nil {
		t.Fatalf("first grade: %v", err)
	}

	err := s.CreateGradeForSubmission(ctx, grade.New(sub.ID, 9, "again"))
	if !errors.Is(err, store.ErrAlreadyGraded) {
		t.Fatalf("expected ErrAlreadyGraded, got %v", err)
	}

	// The losing attempt must leave no grade row behind.
	n, _ := s.CountGrades(ctx)
	if n != 1 {
		t.Errorf("expected 1 grade row, got %d", n)
	}
}

func TestCreateGradeForSubmission_UnknownSubmission(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateGradeForSubmission(context.Background(), grade.New("missing", 5, "x"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestApproveGrade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, sub := seedSubmission(t, s)

	g := grade.New(sub.ID, 8, "ok")
	if err := s.CreateGradeForSubmission(ctx, g); err != nil {
		t.Fatalf("create grade: %v", err)
	}

	if err := s.ApproveGrade(ctx, g.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	got, _ := s.GetSubmission(ctx, sub.ID)
	if got.Status != submission.StatusApproved {
		t.Errorf("expected approved status, got %q", got.Status)
	}
	grades, _ := s.GradesBySubmission(ctx, sub.ID)
	if !grades[0].Approved {
		t.Error("grade not marked approved")
	}

	// Approving twice fails: the submission already left graded.
	if err := s.ApproveGrade(ctx, g.ID); !errors.Is(err, store.ErrAlreadyGraded) {
		t.Errorf("expected ErrAlreadyGraded on double approve, got %v", err)
	}
}

func TestApproveGrade_UnknownGrade(t *testing.T) {
	s := newTestStore(t)

	if err := s.ApproveGrade(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
