package submission

import "github.com/gradeassist/backend/internal/id"

// Status is the grading state of a submission. A submission has exactly one
// status at any time and grading may only be attempted while it is pending.
type Status string

const (
	StatusPending  Status = "pending"
	StatusGraded   Status = "graded"
	StatusApproved Status = "approved"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusGraded, StatusApproved:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is allowed.
// The lifecycle is strictly pending → graded → approved.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusGraded
	case StatusGraded:
		return next == StatusApproved
	}
	return false
}

// Submission is one student answer awaiting grading.
type Submission struct {
	ID           string
	AssignmentID string
	ContentText  string
	Status       Status
}

// New creates a pending Submission with a generated ID.
func New(assignmentID, contentText string) *Submission {
	return &Submission{
		ID:           id.GenerateID(),
		AssignmentID: assignmentID,
		ContentText:  contentText,
		Status:       StatusPending,
	}
}
