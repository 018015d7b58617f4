package solution

import (
	"time"

	"github.com/gradeassist/backend/internal/id"
)

// Solution is one reference answer for an assignment. An assignment may
// have several. VectorID back-references the solution's embedding in the
// vector index (lookup only; the index owns the record).
type Solution struct {
	ID           string
	AssignmentID string
	ContentText  string
	VectorID     *string
	CreatedAt    time.Time
}

// New creates a Solution with a generated ID and no embedding yet.
func New(assignmentID, contentText string) *Solution {
	return &Solution{
		ID:           id.GenerateID(),
		AssignmentID: assignmentID,
		ContentText:  contentText,
		VectorID:     nil,
		CreatedAt:    time.Now().UTC(),
	}
}
