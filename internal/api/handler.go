// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gradeassist/backend/internal/extract"
	"github.com/gradeassist/backend/internal/filestore"
	"github.com/gradeassist/backend/internal/service"
	"github.com/gradeassist/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store     store.Store
	grading   *service.GradingService
	solutions *service.SolutionService
	files     filestore.FileStore
	extractor extract.Extractor
	logger    *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	s store.Store,
	grading *service.GradingService,
	solutions *service.SolutionService,
	files filestore.FileStore,
	extractor extract.Extractor,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		store:     s,
		grading:   grading,
		solutions: solutions,
		files:     files,
		extractor: extractor,
		logger:    logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. Returns false (after writing
// a 400) if the body is not valid JSON; the caller should return.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeAndValidate decodes the request body into v and runs its
// validation. On either failure it writes a 400 and returns false; the
// caller should return.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{ Validate() error }) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, entity+" not found", http.StatusNotFound)
		return true
	}
	if errors.Is(err, store.ErrAlreadyGraded) {
		http.Error(w, "submission is not in the required status", http.StatusConflict)
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	http.Error(w, "internal error", http.StatusInternalServerError)
	return true
}
