package store

import (
	"context"
	"errors"

	"github.com/gradeassist/backend/internal/domain/assignment"
	"github.com/gradeassist/backend/internal/domain/grade"
	"github.com/gradeassist/backend/internal/domain/solution"
	"github.com/gradeassist/backend/internal/domain/submission"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrAlreadyGraded is returned when a grade is created for a
	// submission whose status is no longer pending, or an approval
	// targets one that is not graded.
	ErrAlreadyGraded = errors.New("submission is not pending")
)

// Store is the relational persistence layer for assignments, solutions,
// submissions, and grades. Embedding records live in the vector index,
// not here; solutions only carry a back-reference.
type Store interface {
	SaveAssignment(ctx context.Context, a *assignment.Assignment) error
	GetAssignment(ctx context.Context, id string) (*assignment.Assignment, error)

	SaveSolution(ctx context.Context, s *solution.Solution) error
	GetSolution(ctx context.Context, id string) (*solution.Solution, error)
	// SolutionsByAssignment returns an assignment's solutions, most
	// recently created first.
	SolutionsByAssignment(ctx context.Context, assignmentID string) ([]*solution.Solution, error)
	SetSolutionVectorID(ctx context.Context, solutionID, vectorID string) error
	DeleteSolution(ctx context.Context, id string) error

	SaveSubmission(ctx context.Context, s *submission.Submission) error
	GetSubmission(ctx context.Context, id string) (*submission.Submission, error)

	// CreateGradeForSubmission inserts the grade and transitions the
	// submission pending→graded in one transaction. The transition is a
	// check-and-set: if the submission is no longer pending the whole
	// transaction aborts with ErrAlreadyGraded and no grade row exists.
	CreateGradeForSubmission(ctx context.Context, g *grade.Grade) error

	// ApproveGrade marks the grade approved and transitions its
	// submission graded→approved.
	ApproveGrade(ctx context.Context, gradeID string) error
	GradesBySubmission(ctx context.Context, submissionID string) ([]*grade.Grade, error)
	CountGrades(ctx context.Context) (int, error)

	Close() error
}
