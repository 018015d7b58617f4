package api

import (
	"errors"
	"net/http"

	"github.com/gradeassist/backend/internal/domain/submission"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSubmissionRequest struct {
	ContentText string `json:"content_text" example:"พืชใช้แสงแดดเปลี่ยนน้ำและอากาศเป็นอาหาร"`
}

func (r *CreateSubmissionRequest) Validate() error {
	if r.ContentText == "" {
		return errors.New("content_text is required")
	}
	return nil
}

type SubmissionResponse struct {
	ID           string          `json:"id" example:"a1b2c3d4e5f6g7h8"`
	AssignmentID string          `json:"assignment_id" example:"x9y8z7w6v5u4t3s2"`
	ContentText  string          `json:"content_text"`
	Status       string          `json:"status" example:"pending"`
	Grades       []GradeResponse `json:"grades,omitempty"`
}

type GradeResponse struct {
	ID           string  `json:"id" example:"m3n4b5v6c7x8z9l0"`
	SubmissionID string  `json:"submission_id" example:"a1b2c3d4e5f6g7h8"`
	Score        float64 `json:"score" example:"8.5"`
	Feedback     string  `json:"feedback"`
	Approved     bool    `json:"approved" example:"false"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSubmission records a student answer for grading.
// @Summary      Create a submission
// @Description  Record a student's free-text answer; it starts in pending status.
// @Tags         Submissions
// @Accept       json
// @Produce      json
// @Param        assignmentID  path      string                   true  "Assignment ID"
// @Param        body          body      CreateSubmissionRequest  true  "Submission text"
// @Success      201           {object}  SubmissionResponse
// @Failure      400           {object}  map[string]string
// @Failure      404           {object}  map[string]string  "assignment not found"
// @Router       /assignments/{assignmentID}/submissions [post]
func (h *Handler) createSubmission(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentID")

	var req CreateSubmissionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.store.GetAssignment(r.Context(), assignmentID)
	if h.handleStoreError(w, err, "assignment") {
		return
	}

	sub := submission.New(assignmentID, req.ContentText)
	if err := h.store.SaveSubmission(r.Context(), sub); err != nil {
		http.Error(w, "failed to save submission", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, SubmissionResponse{
		ID:           sub.ID,
		AssignmentID: sub.AssignmentID,
		ContentText:  sub.ContentText,
		Status:       string(sub.Status),
	})
}

// getSubmission returns a submission with its grades.
// @Summary      Get a submission
// @Tags         Submissions
// @Produce      json
// @Param        submissionID  path      string  true  "Submission ID"
// @Success      200           {object}  SubmissionResponse
// @Failure      404           {object}  map[string]string
// @Router       /submissions/{submissionID} [get]
func (h *Handler) getSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := r.PathValue("submissionID")

	sub, err := h.store.GetSubmission(r.Context(), submissionID)
	if h.handleStoreError(w, err, "submission") {
		return
	}

	grades, err := h.store.GradesBySubmission(r.Context(), submissionID)
	if err != nil {
		http.Error(w, "failed to load grades", http.StatusInternalServerError)
		return
	}

	gradeResponses := make([]GradeResponse, len(grades))
	for i, g := range grades {
		gradeResponses[i] = GradeResponse{
			ID:           g.ID,
			SubmissionID: g.SubmissionID,
			Score:        g.Score,
			Feedback:     g.Feedback,
			Approved:     g.Approved,
		}
	}

	respondJSON(w, http.StatusOK, SubmissionResponse{
		ID:           sub.ID,
		AssignmentID: sub.AssignmentID,
		ContentText:  sub.ContentText,
		Status:       string(sub.Status),
		Grades:       gradeResponses,
	})
}
