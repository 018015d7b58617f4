package grader

import "context"

// Grader grades a student's submission against reference solution text.
// Implementations may call an LLM or return canned results (for tests).
type Grader interface {
	// Grade returns the backend's raw free-text grading response.
	// The response is always parseable by ExtractResults, even when the
	// backend was unreachable.
	Grade(ctx context.Context, solutionText, submissionText string, maxScore float64) string
}

// Results is the structured outcome extracted from a raw grading response.
type Results struct {
	Score     float64
	Rationale string
	Feedback  string
}
