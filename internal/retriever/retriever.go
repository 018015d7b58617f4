// Package retriever orchestrates chunking, embedding, and the vector index
// to store and recall semantically similar solution text.
package retriever

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gradeassist/backend/internal/chunker"
	"github.com/gradeassist/backend/internal/embedding"
	"github.com/gradeassist/backend/internal/id"
	"github.com/gradeassist/backend/internal/vectorindex"
	"github.com/gradeassist/backend/internal/worker"
)

// Payload keys attached to every stored embedding record.
const (
	PayloadSolutionID  = "solution_id"
	PayloadType        = "type"
	PayloadChunkIndex  = "chunk_index"
	PayloadTotalChunks = "total_chunks"

	typeSolution = "solution"
)

// Retriever stores solution embeddings and finds solutions similar to a
// query text.
type Retriever struct {
	embedder embedding.Embedder
	index    vectorindex.Index
	logger   *slog.Logger

	chunkSize    int
	chunkOverlap int
	workers      int
}

// New creates a Retriever. chunkSize/chunkOverlap configure the bulk
// ingestion path for long solutions.
func New(e embedding.Embedder, idx vectorindex.Index, logger *slog.Logger, chunkSize, chunkOverlap int) *Retriever {
	return &Retriever{
		embedder:     e,
		index:        idx,
		logger:       logger,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		workers:      4,
	}
}

// ChunkSize reports the threshold above which callers should prefer
// StoreSolutionChunks over StoreSolution.
func (r *Retriever) ChunkSize() int {
	return r.chunkSize
}

// StoreSolution embeds the whole text as one vector and stores it tagged
// with the owning solution. It returns the vector id for the back-reference
// on the solution row.
func (r *Retriever) StoreSolution(ctx context.Context, solutionID, text string, metadata map[string]any) (string, error) {
	payload := clonePayload(metadata)
	payload[PayloadSolutionID] = solutionID
	payload[PayloadType] = typeSolution

	vector, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return "", fmt.Errorf("embed solution %s: %w", solutionID, err)
	}

	vectorID := id.SolutionVectorID()
	if err := r.index.Upsert(ctx, vectorID, vector, payload); err != nil {
		return "", fmt.Errorf("store solution %s: %w", solutionID, err)
	}
	return vectorID, nil
}

// StoreSolutionChunks splits long text, embeds every chunk concurrently,
// and stores each with its position metadata. It returns the stored vector
// ids in chunk order.
func (r *Retriever) StoreSolutionChunks(ctx context.Context, solutionID, text string, metadata map[string]any) ([]string, error) {
	chunks, err := chunker.Split(text, r.chunkSize, r.chunkOverlap)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type chunkResult struct {
		index    int
		vectorID string
		err      error
	}

	pool := worker.NewPool[chunkResult](r.workers, len(chunks))
	for i, chunk := range chunks {
		i, chunk := i, chunk
		pool.Submit(strconv.Itoa(i), func() chunkResult {
			payload := clonePayload(metadata)
			payload[PayloadSolutionID] = solutionID
			payload[PayloadType] = typeSolution
			payload[PayloadChunkIndex] = i
			payload[PayloadTotalChunks] = len(chunks)

			vector, err := r.embedder.Embed(ctx, chunk)
			if err != nil {
				return chunkResult{index: i, err: err}
			}

			vectorID := id.ChunkVectorID()
			if err := r.index.Upsert(ctx, vectorID, vector, payload); err != nil {
				return chunkResult{index: i, err: err}
			}
			return chunkResult{index: i, vectorID: vectorID}
		})
	}
	pool.Close()

	vectorIDs := make([]string, len(chunks))
	for range chunks {
		res := (<-pool.Results()).Output
		if res.err != nil {
			return nil, fmt.Errorf("store chunk %d of solution %s: %w", res.index, solutionID, res.err)
		}
		vectorIDs[res.index] = res.vectorID
	}
	return vectorIDs, nil
}

// FindSimilar embeds the query text once and returns up to limit similar
// records, most similar first. An empty index or an unreachable backend
// yields an empty slice, never an error.
func (r *Retriever) FindSimilar(ctx context.Context, text string, limit int) []vectorindex.Match {
	vector, err := r.embedder.Embed(ctx, text)
	if err != nil {
		r.logger.Error("embedding failed during retrieval", "error", err)
		return nil
	}

	matches, err := r.index.Query(ctx, vector, limit)
	if err != nil {
		r.logger.Error("vector index unavailable, returning no matches", "error", err)
		return nil
	}
	return matches
}

// Delete removes one embedding record. It reports whether the delete
// reached the index.
func (r *Retriever) Delete(ctx context.Context, vectorID string) bool {
	if err := r.index.Delete(ctx, vectorID); err != nil {
		r.logger.Error("failed to delete embedding", "vector_id", vectorID, "error", err)
		return false
	}
	return true
}

// DeleteSolutionRecords removes every embedding record tagged with the
// solution, covering both the whole-text vector and any chunk vectors. It
// reports whether the delete reached the index.
func (r *Retriever) DeleteSolutionRecords(ctx context.Context, solutionID string) bool {
	if err := r.index.DeleteByPayload(ctx, PayloadSolutionID, solutionID); err != nil {
		r.logger.Error("failed to delete solution embeddings", "solution_id", solutionID, "error", err)
		return false
	}
	return true
}

func clonePayload(metadata map[string]any) map[string]any {
	payload := make(map[string]any, len(metadata)+4)
	for k, v := range metadata {
		payload[k] = v
	}
	return payload
}
