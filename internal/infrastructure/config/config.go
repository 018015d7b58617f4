package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DBPath          string
	UploadDir       string

	// LLM grading
	LLMURL   string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel string // model name, e.g. "qwen3-8b"

	// Embeddings
	EmbeddingURL   string // OpenAI-compatible endpoint; empty = local hashing embedder
	EmbeddingModel string
	EmbeddingDim   int

	// Vector index (Qdrant)
	QdrantURL        string
	QdrantAPIKey     string
	VectorCollection string

	// Chunked ingestion
	ChunkSize    int
	ChunkOverlap int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:          getenvDefault("DB_PATH", "gradeassist.db"),
		UploadDir:       getenvDefault("UPLOAD_DIR", "./uploads"),

		LLMURL:   getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel: getenvDefault("LLM_MODEL", "qwen3-8b"),

		EmbeddingURL:   os.Getenv("EMBEDDING_URL"),
		EmbeddingModel: getenvDefault("EMBEDDING_MODEL", "text-embedding-nomic-embed-text-v1.5"),
		EmbeddingDim:   getenvInt("EMBEDDING_DIM", 1536),

		QdrantURL:        getenvDefault("QDRANT_URL", "http://localhost:6333"),
		QdrantAPIKey:     os.Getenv("QDRANT_API_KEY"),
		VectorCollection: getenvDefault("VECTOR_COLLECTION", "solution_embeddings"),

		ChunkSize:    getenvInt("CHUNK_SIZE", 1000),
		ChunkOverlap: getenvInt("CHUNK_OVERLAP", 200),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}
