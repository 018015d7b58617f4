package assignment

import "github.com/gradeassist/backend/internal/id"

// Assignment is one gradable task. Its TotalScore is the maximum score a
// grade for any of its submissions can reach.
type Assignment struct {
	ID         string
	Title      string
	TotalScore float64
}

// New creates an Assignment with a generated ID.
func New(title string, totalScore float64) *Assignment {
	return &Assignment{
		ID:         id.GenerateID(),
		Title:      title,
		TotalScore: totalScore,
	}
}
