// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts every handler on the mux using Go 1.22 method
// patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Assignments
	mux.HandleFunc("POST /assignments", h.createAssignment)
	mux.HandleFunc("GET /assignments/{assignmentID}", h.getAssignment)

	// Reference solutions
	mux.HandleFunc("POST /assignments/{assignmentID}/solutions", h.createSolution)
	mux.HandleFunc("POST /assignments/{assignmentID}/solutions/upload", h.uploadSolution)
	mux.HandleFunc("GET /assignments/{assignmentID}/solutions", h.listSolutions)
	mux.HandleFunc("DELETE /solutions/{solutionID}", h.deleteSolution)

	// Submissions
	mux.HandleFunc("POST /assignments/{assignmentID}/submissions", h.createSubmission)
	mux.HandleFunc("GET /submissions/{submissionID}", h.getSubmission)

	// Grading
	mux.HandleFunc("POST /submissions/{submissionID}/grade", h.gradeSubmission)
	mux.HandleFunc("POST /submissions/{submissionID}/grade/rag", h.gradeSubmissionRAG)
	mux.HandleFunc("POST /grades/{gradeID}/approve", h.approveGrade)
	mux.HandleFunc("GET /stats", h.getStats)
}
