package grade

import "github.com/gradeassist/backend/internal/id"

// Grade is one grading outcome for a submission. Approved defaults to
// false; a teacher approves it through the review workflow.
type Grade struct {
	ID           string
	SubmissionID string
	Score        float64
	Feedback     string
	Approved     bool
}

// New creates an unapproved Grade with a generated ID.
func New(submissionID string, score float64, feedback string) *Grade {
	return &Grade{
		ID:           id.GenerateID(),
		SubmissionID: submissionID,
		Score:        score,
		Feedback:     feedback,
		Approved:     false,
	}
}
