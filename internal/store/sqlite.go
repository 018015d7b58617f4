package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gradeassist/backend/internal/domain/assignment"
	"github.com/gradeassist/backend/internal/domain/grade"
	"github.com/gradeassist/backend/internal/domain/solution"
	"github.com/gradeassist/backend/internal/domain/submission"
)

const schema = `
CREATE TABLE IF NOT EXISTS assignments (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    total_score REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS solutions (
    id TEXT PRIMARY KEY,
    assignment_id TEXT NOT NULL,
    content_text TEXT NOT NULL,
    vector_id TEXT,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (assignment_id) REFERENCES assignments(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS submissions (
    id TEXT PRIMARY KEY,
    assignment_id TEXT NOT NULL,
    content_text TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    FOREIGN KEY (assignment_id) REFERENCES assignments(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS grades (
    id TEXT PRIMARY KEY,
    submission_id TEXT NOT NULL,
    score REAL NOT NULL,
    feedback TEXT NOT NULL,
    approved INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (submission_id) REFERENCES submissions(id) ON DELETE CASCADE
);
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Assignments
// ============================================================================

func (s *SQLiteStore) SaveAssignment(ctx context.Context, a *assignment.Assignment) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO assignments (id, title, total_score) VALUES (?, ?, ?)",
		a.ID, a.Title, a.TotalScore,
	)
	return err
}

func (s *SQLiteStore) GetAssignment(ctx context.Context, id string) (*assignment.Assignment, error) {
	var a assignment.Assignment
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, total_score FROM assignments WHERE id = ?", id,
	).Scan(&a.ID, &a.Title, &a.TotalScore)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ============================================================================
// Solutions
// ============================================================================

func (s *SQLiteStore) SaveSolution(ctx context.Context, sol *solution.Solution) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO solutions (id, assignment_id, content_text, vector_id, created_at) VALUES (?, ?, ?, ?, ?)",
		sol.ID, sol.AssignmentID, sol.ContentText, sol.VectorID, sol.CreatedAt,
	)
	return err
}

func (s *SQLiteStore) GetSolution(ctx context.Context, id string) (*solution.Solution, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, assignment_id, content_text, vector_id, created_at FROM solutions WHERE id = ?", id,
	)
	return scanSolution(row)
}

func (s *SQLiteStore) SolutionsByAssignment(ctx context.Context, assignmentID string) ([]*solution.Solution, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, assignment_id, content_text, vector_id, created_at FROM solutions WHERE assignment_id = ? ORDER BY created_at DESC",
		assignmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solutions []*solution.Solution
	for rows.Next() {
		sol, err := scanSolution(rows)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, sol)
	}
	return solutions, rows.Err()
}

func (s *SQLiteStore) SetSolutionVectorID(ctx context.Context, solutionID, vectorID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE solutions SET vector_id = ? WHERE id = ?", vectorID, solutionID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLiteStore) DeleteSolution(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM solutions WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolution(row rowScanner) (*solution.Solution, error) {
	var (
		sol       solution.Solution
		vectorID  sql.NullString
		createdAt time.Time
	)
	err := row.Scan(&sol.ID, &sol.AssignmentID, &sol.ContentText, &vectorID, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if vectorID.Valid {
		sol.VectorID = &vectorID.String
	}
	sol.CreatedAt = createdAt
	return &sol, nil
}

// ============================================================================
// Submissions
// ============================================================================

func (s *SQLiteStore) SaveSubmission(ctx context.Context, sub *submission.Submission) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO submissions (id, assignment_id, content_text, status) VALUES (?, ?, ?, ?)",
		sub.ID, sub.AssignmentID, sub.ContentText, string(sub.Status),
	)
	return err
}

func (s *SQLiteStore) GetSubmission(ctx context.Context, id string) (*submission.Submission, error) {
	var sub submission.Submission
	err := s.db.QueryRowContext(ctx,
		"SELECT id, assignment_id, content_text, status FROM submissions WHERE id = ?", id,
	).Scan(&sub.ID, &sub.AssignmentID, &sub.ContentText, &sub.Status)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ============================================================================
// Grades
// ============================================================================

// CreateGradeForSubmission persists the grade and flips the submission to
// graded in one transaction. The UPDATE carries the pending precondition,
// so two racing graders cannot both insert: the loser's transaction sees
// zero affected rows and rolls back.
func (s *SQLiteStore) CreateGradeForSubmission(ctx context.Context, g *grade.Grade) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE submissions SET status = ? WHERE id = ? AND status = ?",
		string(submission.StatusGraded), g.SubmissionID, string(submission.StatusPending),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the submission does not exist or it is past pending.
		var exists int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM submissions WHERE id = ?", g.SubmissionID,
		).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return ErrNotFound
		}
		return ErrAlreadyGraded
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO grades (id, submission_id, score, feedback, approved) VALUES (?, ?, ?, ?, ?)",
		g.ID, g.SubmissionID, g.Score, g.Feedback, boolToInt(g.Approved),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) ApproveGrade(ctx context.Context, gradeID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var submissionID string
	err = tx.QueryRowContext(ctx,
		"SELECT submission_id FROM grades WHERE id = ?", gradeID,
	).Scan(&submissionID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE submissions SET status = ? WHERE id = ? AND status = ?",
		string(submission.StatusApproved), submissionID, string(submission.StatusGraded),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAlreadyGraded
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE grades SET approved = 1 WHERE id = ?", gradeID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GradesBySubmission(ctx context.Context, submissionID string) ([]*grade.Grade, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, submission_id, score, feedback, approved FROM grades WHERE submission_id = ?",
		submissionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*grade.Grade
	for rows.Next() {
		var (
			g        grade.Grade
			approved int
		)
		if err := rows.Scan(&g.ID, &g.SubmissionID, &g.Score, &g.Feedback, &approved); err != nil {
			return nil, err
		}
		g.Approved = approved != 0
		grades = append(grades, &g)
	}
	return grades, rows.Err()
}

func (s *SQLiteStore) CountGrades(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM grades").Scan(&n)
	return n, err
}

// ============================================================================
// Helpers
// ============================================================================

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ping verifies the database connection, used by the health endpoint.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}
