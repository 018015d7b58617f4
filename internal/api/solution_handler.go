package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gradeassist/backend/internal/extract"
)

// maxUploadBytes bounds solution file uploads to 10 MiB.
const maxUploadBytes = 10 << 20

// ── Request / Response types ────────────────────────────────────────────────

type CreateSolutionRequest struct {
	ContentText string `json:"content_text" example:"พืชสร้างอาหารโดยใช้แสง น้ำ และคาร์บอนไดออกไซด์"`
}

func (r *CreateSolutionRequest) Validate() error {
	if r.ContentText == "" {
		return errors.New("content_text is required")
	}
	return nil
}

type SolutionResponse struct {
	ID           string  `json:"id" example:"q1w2e3r4t5y6u7i8"`
	AssignmentID string  `json:"assignment_id" example:"x9y8z7w6v5u4t3s2"`
	ContentText  string  `json:"content_text"`
	VectorID     *string `json:"vector_id,omitempty" example:"sol_8d7f6a5b-1c2d-4e3f-9a8b-7c6d5e4f3a2b"`
	CreatedAt    string  `json:"created_at" example:"2025-01-15T09:30:00Z"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSolution adds a reference solution from raw text.
// @Summary      Create a reference solution
// @Description  Add a reference solution to an assignment and embed it for retrieval.
// @Tags         Solutions
// @Accept       json
// @Produce      json
// @Param        assignmentID  path      string                 true  "Assignment ID"
// @Param        body          body      CreateSolutionRequest  true  "Solution text"
// @Success      201           {object}  SolutionResponse
// @Failure      400           {object}  map[string]string
// @Failure      404           {object}  map[string]string  "assignment not found"
// @Router       /assignments/{assignmentID}/solutions [post]
func (h *Handler) createSolution(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentID")

	var req CreateSolutionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sol, err := h.solutions.CreateSolution(r.Context(), assignmentID, req.ContentText)
	if h.handleStoreError(w, err, "assignment") {
		return
	}

	respondJSON(w, http.StatusCreated, SolutionResponse{
		ID:           sol.ID,
		AssignmentID: sol.AssignmentID,
		ContentText:  sol.ContentText,
		VectorID:     sol.VectorID,
		CreatedAt:    sol.CreatedAt.Format(time.RFC3339),
	})
}

// uploadSolution adds a reference solution from an uploaded file.
// @Summary      Upload a reference solution file
// @Description  Multipart upload of a solution file. The raw file is kept on disk and its extracted text goes through the same ingestion path as a JSON solution.
// @Tags         Solutions
// @Accept       multipart/form-data
// @Produce      json
// @Param        assignmentID  path      string  true  "Assignment ID"
// @Param        file          formData  file    true  "Solution file (text/plain, markdown, csv)"
// @Success      201           {object}  SolutionResponse
// @Failure      400           {object}  map[string]string
// @Failure      404           {object}  map[string]string  "assignment not found"
// @Failure      415           {object}  map[string]string  "unsupported file type"
// @Router       /assignments/{assignmentID}/solutions/upload [post]
func (h *Handler) uploadSolution(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentID")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	text, err := h.extractor.ExtractText(data, contentType)
	if errors.Is(err, extract.ErrUnsupportedType) {
		http.Error(w, "unsupported file type: "+contentType, http.StatusUnsupportedMediaType)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if text == "" {
		http.Error(w, "file contains no text", http.StatusBadRequest)
		return
	}

	if _, err := h.files.Save(header.Filename, data); err != nil {
		h.logger.Error("failed to store uploaded file", "error", err, "filename", header.Filename)
		http.Error(w, "failed to store file", http.StatusInternalServerError)
		return
	}

	sol, err := h.solutions.CreateSolution(r.Context(), assignmentID, text)
	if h.handleStoreError(w, err, "assignment") {
		return
	}

	respondJSON(w, http.StatusCreated, SolutionResponse{
		ID:           sol.ID,
		AssignmentID: sol.AssignmentID,
		ContentText:  sol.ContentText,
		VectorID:     sol.VectorID,
		CreatedAt:    sol.CreatedAt.Format(time.RFC3339),
	})
}

// listSolutions lists an assignment's solutions, most recent first.
// @Summary      List reference solutions
// @Tags         Solutions
// @Produce      json
// @Param        assignmentID  path      string  true  "Assignment ID"
// @Success      200           {array}   SolutionResponse
// @Failure      404           {object}  map[string]string
// @Router       /assignments/{assignmentID}/solutions [get]
func (h *Handler) listSolutions(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentID")

	_, err := h.store.GetAssignment(r.Context(), assignmentID)
	if h.handleStoreError(w, err, "assignment") {
		return
	}

	sols, err := h.store.SolutionsByAssignment(r.Context(), assignmentID)
	if err != nil {
		http.Error(w, "failed to load solutions", http.StatusInternalServerError)
		return
	}

	response := make([]SolutionResponse, len(sols))
	for i, sol := range sols {
		response[i] = SolutionResponse{
			ID:           sol.ID,
			AssignmentID: sol.AssignmentID,
			ContentText:  sol.ContentText,
			VectorID:     sol.VectorID,
			CreatedAt:    sol.CreatedAt.Format(time.RFC3339),
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// deleteSolution removes a solution and its embedding records.
// @Summary      Delete a reference solution
// @Description  Delete the solution row and every embedding record tagged with it.
// @Tags         Solutions
// @Param        solutionID  path  string  true  "Solution ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /solutions/{solutionID} [delete]
func (h *Handler) deleteSolution(w http.ResponseWriter, r *http.Request) {
	solutionID := r.PathValue("solutionID")

	err := h.solutions.DeleteSolution(r.Context(), solutionID)
	if h.handleStoreError(w, err, "solution") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
