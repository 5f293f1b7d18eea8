package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//chunking
	ChunkSize    = 1000 //characters
	ChunkOverlap = 150

	//retrieval
	RetrievalTopK = 10

	//uploads
	MaxUploadSizeBytes = 32 << 20 //32mb

	//oracle
	OracleTimeout            = 60 * time.Second
	ModelTemperature float64 = 0.7
	// MaxOutputTokens <= 0 means unbounded, matching the provider sentinel.
	MaxOutputTokens int64 = -1

	//embedding
	EmbeddingTimeout = 30 * time.Second
	//page extraction can hang on malformed PDFs
	PageExtractTimeout = 10 * time.Second

	PersonaPrompt = "Always answer like Leonard Euler. Brilliant mathematician living in 21st century."

	//providers: "openai" talks to any OpenAI-compatible endpoint (LM Studio,
	//vLLM, the real thing); "gemini" uses the genai SDK.
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel = "gemini-embedding-001"

	EmbeddingOutputDimensionality int32 = 1536

	//vector index backends
	IndexBackendMemory = "memory"
	IndexBackendQdrant = "qdrant"

	QdrantUseTLS           = false
	QdrantPoolSize         = 1
	QdrantGrpcPort         = 6334
	QdrantCollectionPrefix = "docchat_user_"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second
)

// Env values with defaults matching a local LM Studio setup, the same shape
// the original deployment ran against.
var (
	OracleBaseURL      = "http://localhost:1234/v1"
	OracleModelName    = "llama-3.2-1b-instruct"
	OracleAPIKey       = "not-needed"
	EmbeddingModelName = "text-embedding-nomic-embed-text-v1.5"
	GoogleAPIKey       = ""
	LLMProviderName    = ProviderOpenAI
	IndexBackend       = IndexBackendMemory
	QdrantHost         = "localhost"
	AuthToken          = ""
	NoAuthBypass       = true
)

// LoadEnv reads .env if present and overrides the defaults above. Missing
// variables keep their defaults; an absent .env file is not an error.
func LoadEnv() {
	_ = godotenv.Load()

	setFromEnv(&OracleBaseURL, "ORACLE_BASE_URL")
	setFromEnv(&OracleModelName, "ORACLE_MODEL")
	setFromEnv(&OracleAPIKey, "ORACLE_API_KEY")
	setFromEnv(&EmbeddingModelName, "EMBEDDING_MODEL")
	setFromEnv(&GoogleAPIKey, "GOOGLE_API_KEY")
	setFromEnv(&LLMProviderName, "LLM_PROVIDER")
	setFromEnv(&IndexBackend, "INDEX_BACKEND")
	setFromEnv(&QdrantHost, "QDRANT_HOST")

	if token := os.Getenv("AUTH_TOKEN"); token != "" {
		AuthToken = token
		NoAuthBypass = false
	}
}

func setFromEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
