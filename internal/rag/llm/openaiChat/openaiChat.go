package openaiChat

import (
	"context"
	"errors"
	"sync"

	"docchat/internal/customHttpClient"
	"docchat/internal/domain/chatModel"
	"docchat/internal/rag/llm"
	"docchat/pkg/logger_i"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type oracleClient struct {
	client *openai.Client
	model  string
}

var logger *logger_i.Logger
var oracleInstance *oracleClient
var once sync.Once

// GetOpenAIClient returns the oracle backed by any OpenAI-compatible
// chat-completions endpoint (LM Studio, vLLM, api.openai.com).
func GetOpenAIClient(baseURL string, apiKey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		c := openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(apiKey),
			option.WithHTTPClient(customHttpClient.PooledClient()),
		)
		oracleInstance = &oracleClient{client: &c, model: modelName}
		logger.Info("OpenAI-compatible oracle client created", "baseURL", baseURL, "model", modelName)
	})

	if oracleInstance == nil {
		return nil
	}
	return oracleInstance
}

func (c *oracleClient) Complete(ctx context.Context, history []chatModel.Turn, temperature float64, maxTokens int64) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, turn := range history {
		switch turn.Role {
		case chatModel.RoleSystem:
			messages = append(messages, openai.SystemMessage(turn.Content))
		case chatModel.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    messages,
		Temperature: openai.Float(temperature),
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(maxTokens)
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("Oracle call failed", "error", err)
		return "", &llm.OracleError{Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &llm.OracleError{Err: errors.New("no completion choices returned")}
	}
	return completion.Choices[0].Message.Content, nil
}
