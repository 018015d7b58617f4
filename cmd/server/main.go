package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gradeassist/backend/internal/api"
	"github.com/gradeassist/backend/internal/embedding"
	"github.com/gradeassist/backend/internal/extract"
	"github.com/gradeassist/backend/internal/filestore"
	"github.com/gradeassist/backend/internal/grader"
	"github.com/gradeassist/backend/internal/infrastructure/config"
	"github.com/gradeassist/backend/internal/retriever"
	"github.com/gradeassist/backend/internal/service"
	"github.com/gradeassist/backend/internal/store"
	"github.com/gradeassist/backend/internal/vectorindex"

	_ "github.com/gradeassist/backend/docs" // generated swagger docs
)

// @title           GradeAssist API
// @version         1.0
// @description     AI-assisted grading backend — register assignments and reference solutions, collect student submissions, and let an LLM grade them with optional retrieval-augmented context.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var embedder embedding.Embedder
	if cfg.EmbeddingURL != "" {
		embedder = embedding.NewRemoteEmbedder(cfg.EmbeddingURL, cfg.EmbeddingModel, cfg.EmbeddingDim, logger)
	} else {
		logger.Warn("EMBEDDING_URL not set, using local hashing embedder")
		embedder = embedding.NewHashingEmbedder(cfg.EmbeddingDim)
	}

	index := vectorindex.NewQdrant(cfg.QdrantURL, cfg.QdrantAPIKey, cfg.VectorCollection, cfg.EmbeddingDim)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := index.EnsureCollection(ctx); err != nil {
			// Retrieval degrades gracefully; grading still works without it.
			logger.Warn("vector index unavailable", "error", err, "url", cfg.QdrantURL)
		}
		cancel()
	}

	rtr := retriever.New(embedder, index, logger, cfg.ChunkSize, cfg.ChunkOverlap)
	llm := grader.NewLLMGrader(cfg.LLMURL, cfg.LLMModel, logger)

	files, err := filestore.NewLocal(cfg.UploadDir)
	if err != nil {
		logger.Error("failed to create upload directory", "error", err, "dir", cfg.UploadDir)
		os.Exit(1)
	}

	gradingSvc := service.NewGradingService(db, llm, rtr, logger)
	solutionSvc := service.NewSolutionService(db, rtr, logger)
	handler := api.NewHandler(db, gradingSvc, solutionSvc, files, extract.NewPlainText(), logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      120 * time.Second, // grading calls block on the LLM
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
