package openaiEmbedding

import (
	"context"
	"fmt"
	"sync"

	"docchat/internal/customHttpClient"
	"docchat/internal/rag/embedding"
	"docchat/pkg/logger_i"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type client struct {
	openAi *openai.Client
	model  string
}

var logger *logger_i.Logger
var embeddingClient *client
var once sync.Once

// GetOpenAIEmbeddingClient returns an Embedder backed by an OpenAI-compatible
// embeddings endpoint. LM Studio serves these from the same base URL as chat.
func GetOpenAIEmbeddingClient(baseURL string, apiKey string, modelName string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("openai_embedding")
		c := openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(apiKey),
			option.WithHTTPClient(customHttpClient.PooledClient()),
		)
		embeddingClient = &client{openAi: &c, model: modelName}
		logger.Info("OpenAI embedding client created", "model", modelName)
	})

	if embeddingClient == nil {
		return nil
	}
	return embeddingClient
}

func (c *client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	vectors, err := c.BatchEmbedding(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (c *client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	res, err := c.openAi.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.model),
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: chunks},
	})
	if err != nil {
		logger.Error("Embedding call failed", "error", err, "batch", len(chunks))
		return nil, &embedding.Error{Err: err}
	}
	if len(res.Data) != len(chunks) {
		return nil, &embedding.Error{Err: fmt.Errorf("got %d embeddings for %d inputs", len(res.Data), len(chunks))}
	}

	vectors := make([][]float32, len(res.Data))
	for i, d := range res.Data {
		vec := make([]float32, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}
