package api

import (
	"errors"
	"net/http"

	"github.com/gradeassist/backend/internal/service"
)

// ── Response types ──────────────────────────────────────────────────────────

type ApproveGradeResponse struct {
	ID       string `json:"id" example:"m3n4b5v6c7x8z9l0"`
	Approved bool   `json:"approved" example:"true"`
}

type StatsResponse struct {
	TotalGrades int `json:"total_grades" example:"42"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// gradeSubmission grades a pending submission directly against the most
// recent reference solution.
// @Summary      Grade a submission
// @Description  Grade a pending submission against its assignment's most recent reference solution.
// @Tags         Grading
// @Produce      json
// @Param        submissionID  path      string  true  "Submission ID"
// @Success      200           {object}  service.GradingResult
// @Failure      404           {object}  map[string]string  "submission not found"
// @Failure      409           {object}  map[string]string  "submission is not pending"
// @Failure      422           {object}  map[string]string  "assignment has no reference solution"
// @Router       /submissions/{submissionID}/grade [post]
func (h *Handler) gradeSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := r.PathValue("submissionID")

	result, err := h.grading.GradeSubmissionWithLLM(r.Context(), submissionID)
	if errors.Is(err, service.ErrNoReferenceFound) {
		http.Error(w, "assignment has no reference solution", http.StatusUnprocessableEntity)
		return
	}
	if h.handleStoreError(w, err, "submission") {
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// gradeSubmissionRAG grades a pending submission against retrieved similar
// solutions, falling back to direct grading when retrieval is empty.
// @Summary      Grade a submission with retrieval
// @Description  Grade a pending submission against solutions retrieved by semantic similarity; falls back to direct grading when retrieval yields nothing usable.
// @Tags         Grading
// @Produce      json
// @Param        submissionID  path      string  true  "Submission ID"
// @Success      200           {object}  service.GradingResult
// @Failure      404           {object}  map[string]string  "submission not found"
// @Failure      409           {object}  map[string]string  "submission is not pending"
// @Failure      422           {object}  map[string]string  "assignment has no reference solution"
// @Router       /submissions/{submissionID}/grade/rag [post]
func (h *Handler) gradeSubmissionRAG(w http.ResponseWriter, r *http.Request) {
	submissionID := r.PathValue("submissionID")

	result, err := h.grading.GradeWithRAG(r.Context(), submissionID)
	if errors.Is(err, service.ErrNoReferenceFound) {
		http.Error(w, "assignment has no reference solution", http.StatusUnprocessableEntity)
		return
	}
	if h.handleStoreError(w, err, "submission") {
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// approveGrade marks a grade as approved by the teacher.
// @Summary      Approve a grade
// @Description  Approve a grade and transition its submission from graded to approved.
// @Tags         Grading
// @Produce      json
// @Param        gradeID  path      string  true  "Grade ID"
// @Success      200      {object}  ApproveGradeResponse
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string  "submission is not graded"
// @Router       /grades/{gradeID}/approve [post]
func (h *Handler) approveGrade(w http.ResponseWriter, r *http.Request) {
	gradeID := r.PathValue("gradeID")

	err := h.store.ApproveGrade(r.Context(), gradeID)
	if h.handleStoreError(w, err, "grade") {
		return
	}

	respondJSON(w, http.StatusOK, ApproveGradeResponse{
		ID:       gradeID,
		Approved: true,
	})
}

// getStats reports grading totals.
// @Summary      Grading statistics
// @Tags         Grading
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      500  {object}  map[string]string
// @Router       /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.CountGrades(r.Context())
	if err != nil {
		http.Error(w, "failed to count grades", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, StatsResponse{TotalGrades: count})
}
