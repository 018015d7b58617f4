// internal/service/grading.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gradeassist/backend/internal/domain/grade"
	"github.com/gradeassist/backend/internal/domain/submission"
	"github.com/gradeassist/backend/internal/grader"
	"github.com/gradeassist/backend/internal/retriever"
	"github.com/gradeassist/backend/internal/store"
	"github.com/gradeassist/backend/internal/vectorindex"
)

// ErrNoReferenceFound is returned when an assignment has no solution text
// to grade against. No grade is created.
var ErrNoReferenceFound = errors.New("no reference solution found for this assignment")

// retrievalLimit bounds how many similar solutions the RAG path considers.
const retrievalLimit = 5

// Method values reported in a GradingResult.
const (
	MethodLLM = "llm"
	MethodRAG = "rag"
)

// GradingResult is the outcome of one successful grading attempt.
type GradingResult struct {
	GradeID        string  `json:"grade_id"`
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	MaxScore       float64 `json:"max_score"`
	RawResponse    string  `json:"raw_llm_response"`
	Method         string  `json:"method"`
	RetrievedCount int     `json:"retrieved_count"`
}

// SolutionRetriever is the similarity-search capability the orchestrator
// needs. *retriever.Retriever satisfies it.
type SolutionRetriever interface {
	FindSimilar(ctx context.Context, text string, limit int) []vectorindex.Match
}

// GradingService is the grading orchestrator: it coordinates retrieval,
// prompting, parsing, persistence, and the RAG→direct fallback.
type GradingService struct {
	store     store.Store
	grader    grader.Grader
	retriever SolutionRetriever
	logger    *slog.Logger
}

// NewGradingService creates a GradingService.
func NewGradingService(s store.Store, g grader.Grader, r SolutionRetriever, logger *slog.Logger) *GradingService {
	return &GradingService{
		store:     s,
		grader:    g,
		retriever: r,
		logger:    logger,
	}
}

// GradeSubmissionWithLLM grades a pending submission directly against its
// assignment's most recent solution.
func (gs *GradingService) GradeSubmissionWithLLM(ctx context.Context, submissionID string) (*GradingResult, error) {
	sub, err := gs.loadPending(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	solutions, err := gs.store.SolutionsByAssignment(ctx, sub.AssignmentID)
	if err != nil {
		return nil, fmt.Errorf("load solutions: %w", err)
	}
	if len(solutions) == 0 {
		return nil, ErrNoReferenceFound
	}

	return gs.gradeAgainst(ctx, sub, solutions[0].ContentText, MethodLLM, 0)
}

// GradeWithRAG grades a pending submission against solutions retrieved by
// semantic similarity to the submission text. When retrieval yields nothing
// usable, or anything in the retrieval path fails, it falls back to direct
// grading.
func (gs *GradingService) GradeWithRAG(ctx context.Context, submissionID string) (*GradingResult, error) {
	sub, err := gs.loadPending(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	matches := gs.retriever.FindSimilar(ctx, sub.ContentText, retrievalLimit)
	if len(matches) == 0 {
		gs.logger.Info("no similar solutions found, falling back to direct grading",
			"submission_id", submissionID,
		)
		return gs.GradeSubmissionWithLLM(ctx, submissionID)
	}

	// Resolve retrieved records back to solution rows. Records whose
	// solution has been deleted since embedding are skipped.
	var texts []string
	resolved := 0
	for _, m := range matches {
		solutionID, ok := m.Payload[retriever.PayloadSolutionID].(string)
		if !ok || solutionID == "" {
			continue
		}
		sol, err := gs.store.GetSolution(ctx, solutionID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				gs.logger.Warn("failed to resolve retrieved solution",
					"solution_id", solutionID,
					"error", err,
				)
			}
			continue
		}
		if sol.ContentText != "" {
			texts = append(texts, sol.ContentText)
			resolved++
		}
	}

	combined := strings.Join(texts, "\n\n")
	if combined == "" {
		gs.logger.Info("retrieved records resolved to no text, falling back to direct grading",
			"submission_id", submissionID,
		)
		return gs.GradeSubmissionWithLLM(ctx, submissionID)
	}

	result, err := gs.gradeAgainst(ctx, sub, combined, MethodRAG, resolved)
	if err != nil {
		// Precondition violations are final either way; anything else
		// in the retrieval path degrades to the direct path.
		if errors.Is(err, store.ErrAlreadyGraded) || errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		gs.logger.Error("RAG grading failed, falling back to direct grading",
			"submission_id", submissionID,
			"error", err,
		)
		return gs.GradeSubmissionWithLLM(ctx, submissionID)
	}
	return result, nil
}

// loadPending fetches the submission and enforces the grading precondition.
func (gs *GradingService) loadPending(ctx context.Context, submissionID string) (*submission.Submission, error) {
	sub, err := gs.store.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("load submission: %w", err)
	}
	if sub.Status != submission.StatusPending {
		return nil, store.ErrAlreadyGraded
	}
	return sub, nil
}

// gradeAgainst runs prompt → LLM → parse → persist for one reference text.
// The grade insert and the pending→graded transition commit together, so a
// result is returned only when both happened.
func (gs *GradingService) gradeAgainst(ctx context.Context, sub *submission.Submission, referenceText, method string, retrievedCount int) (*GradingResult, error) {
	a, err := gs.store.GetAssignment(ctx, sub.AssignmentID)
	if err != nil {
		return nil, fmt.Errorf("load assignment: %w", err)
	}

	raw := gs.grader.Grade(ctx, referenceText, sub.ContentText, a.TotalScore)
	results := grader.ExtractResults(raw)

	feedback := results.Rationale + "\n\n" + results.Feedback

	g := grade.New(sub.ID, results.Score, feedback)
	if err := gs.store.CreateGradeForSubmission(ctx, g); err != nil {
		return nil, err
	}

	gs.logger.Info("submission graded",
		"submission_id", sub.ID,
		"grade_id", g.ID,
		"score", results.Score,
		"method", method,
	)

	return &GradingResult{
		GradeID:        g.ID,
		Score:          results.Score,
		Feedback:       feedback,
		MaxScore:       a.TotalScore,
		RawResponse:    raw,
		Method:         method,
		RetrievedCount: retrievedCount,
	}, nil
}
