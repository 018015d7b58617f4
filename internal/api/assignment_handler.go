package api

import (
	"errors"
	"net/http"

	"github.com/gradeassist/backend/internal/domain/assignment"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateAssignmentRequest struct {
	Title      string  `json:"title" example:"Explain photosynthesis"`
	TotalScore float64 `json:"total_score" example:"10"`
}

func (r *CreateAssignmentRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.TotalScore <= 0 {
		return errors.New("total_score must be positive")
	}
	return nil
}

type AssignmentResponse struct {
	ID         string  `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Title      string  `json:"title" example:"Explain photosynthesis"`
	TotalScore float64 `json:"total_score" example:"10"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createAssignment registers a new gradable assignment.
// @Summary      Create an assignment
// @Description  Register a gradable assignment with its maximum score.
// @Tags         Assignments
// @Accept       json
// @Produce      json
// @Param        body  body      CreateAssignmentRequest  true  "Assignment to create"
// @Success      201   {object}  AssignmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /assignments [post]
func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	a := assignment.New(req.Title, req.TotalScore)
	if err := h.store.SaveAssignment(r.Context(), a); err != nil {
		http.Error(w, "failed to save assignment", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, AssignmentResponse{
		ID:         a.ID,
		Title:      a.Title,
		TotalScore: a.TotalScore,
	})
}

// getAssignment returns one assignment.
// @Summary      Get an assignment
// @Tags         Assignments
// @Produce      json
// @Param        assignmentID  path      string  true  "Assignment ID"
// @Success      200           {object}  AssignmentResponse
// @Failure      404           {object}  map[string]string
// @Router       /assignments/{assignmentID} [get]
func (h *Handler) getAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentID")

	a, err := h.store.GetAssignment(r.Context(), assignmentID)
	if h.handleStoreError(w, err, "assignment") {
		return
	}

	respondJSON(w, http.StatusOK, AssignmentResponse{
		ID:         a.ID,
		Title:      a.Title,
		TotalScore: a.TotalScore,
	})
}
