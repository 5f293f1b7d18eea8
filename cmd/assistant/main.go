// @title           DocChat Assistant API
// @version         1.0
// @description     Conversational assistant that answers questions grounded in user-uploaded documents
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"docchat/internal/config"
	"docchat/internal/handlers"
	"docchat/internal/rag"
	"docchat/internal/rag/embedding"
	"docchat/internal/rag/embedding/googleEmbedding"
	"docchat/internal/rag/embedding/openaiEmbedding"
	"docchat/internal/rag/llm"
	"docchat/internal/rag/llm/gemini"
	"docchat/internal/rag/llm/openaiChat"
	"docchat/internal/rag/vectorindex"
	"docchat/internal/rag/vectorindex/qdrantIndex"
	"docchat/internal/server"
	"docchat/internal/session"
	"docchat/pkg/logger_i"
)

var listenAddr string

func main() {

	config.LoadEnv()
	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	var embeddingService embedding.Embedder
	var llmProvider llm.Provider

	switch config.LLMProviderName {
	case config.ProviderGemini:
		embeddingService = googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey)
		llmProvider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GoogleAPIKey)
	default:
		embeddingService = openaiEmbedding.GetOpenAIEmbeddingClient(config.OracleBaseURL, config.OracleAPIKey, config.EmbeddingModelName)
		llmProvider = openaiChat.GetOpenAIClient(config.OracleBaseURL, config.OracleAPIKey, config.OracleModelName)
	}

	if embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	var indexFactory vectorindex.Factory
	if config.IndexBackend == config.IndexBackendQdrant {
		indexFactory = qdrantIndex.NewFactory(serviceContext, embeddingService)
		if indexFactory == nil {
			logger.Error("Qdrant is unreachable. Shutting down.")
			return
		}
	} else {
		indexFactory = vectorindex.NewMemoryFactory(embeddingService)
	}

	sessionStore := session.InitStore(indexFactory, config.PersonaPrompt)
	ragService := rag.NewService(sessionStore, llmProvider)

	handlers.InitHandlers(ragService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
