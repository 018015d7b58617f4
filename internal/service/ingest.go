// internal/service/ingest.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gradeassist/backend/internal/domain/solution"
	"github.com/gradeassist/backend/internal/retriever"
	"github.com/gradeassist/backend/internal/store"
)

// SolutionService manages the solution side of the pipeline: creating
// reference solutions, pushing their embeddings into the vector index, and
// removing both together.
type SolutionService struct {
	store     store.Store
	retriever *retriever.Retriever
	logger    *slog.Logger
}

// NewSolutionService creates a SolutionService.
func NewSolutionService(s store.Store, r *retriever.Retriever, logger *slog.Logger) *SolutionService {
	return &SolutionService{
		store:     s,
		retriever: r,
		logger:    logger,
	}
}

// CreateSolution stores a reference solution and embeds its text. Short
// text is embedded whole and back-referenced from the solution row; text
// longer than the configured chunk size goes through the chunked bulk path.
//
// Embedding is best-effort: if the vector index is unreachable the solution
// still exists, it just cannot be retrieved semantically until re-ingested.
func (ss *SolutionService) CreateSolution(ctx context.Context, assignmentID, contentText string) (*solution.Solution, error) {
	if _, err := ss.store.GetAssignment(ctx, assignmentID); err != nil {
		return nil, fmt.Errorf("load assignment: %w", err)
	}

	sol := solution.New(assignmentID, contentText)
	if err := ss.store.SaveSolution(ctx, sol); err != nil {
		return nil, fmt.Errorf("save solution: %w", err)
	}

	metadata := map[string]any{"assignment_id": assignmentID}

	if len([]rune(contentText)) > ss.retriever.ChunkSize() {
		vectorIDs, err := ss.retriever.StoreSolutionChunks(ctx, sol.ID, contentText, metadata)
		if err != nil {
			ss.logger.Error("failed to store chunked solution embeddings",
				"solution_id", sol.ID,
				"error", err,
			)
			return sol, nil
		}
		ss.logger.Info("solution embedded in chunks",
			"solution_id", sol.ID,
			"chunks", len(vectorIDs),
		)
		return sol, nil
	}

	vectorID, err := ss.retriever.StoreSolution(ctx, sol.ID, contentText, metadata)
	if err != nil {
		ss.logger.Error("failed to store solution embedding",
			"solution_id", sol.ID,
			"error", err,
		)
		return sol, nil
	}
	if err := ss.store.SetSolutionVectorID(ctx, sol.ID, vectorID); err != nil {
		return nil, fmt.Errorf("save vector reference: %w", err)
	}
	sol.VectorID = &vectorID
	return sol, nil
}

// DeleteSolution removes the solution row and every embedding record that
// belongs to it. Both the whole-text and the chunked ingestion path tag
// records with the solution id, so one tagged delete covers either.
func (ss *SolutionService) DeleteSolution(ctx context.Context, solutionID string) error {
	if _, err := ss.store.GetSolution(ctx, solutionID); err != nil {
		return err
	}

	if err := ss.store.DeleteSolution(ctx, solutionID); err != nil {
		return err
	}

	if !ss.retriever.DeleteSolutionRecords(ctx, solutionID) {
		ss.logger.Warn("solution deleted but embedding removal failed",
			"solution_id", solutionID,
		)
	}
	return nil
}
