package gemini

import (
	"context"
	"errors"
	"sync"

	"docchat/internal/domain/chatModel"
	"docchat/internal/rag/llm"
	"docchat/pkg/logger_i"

	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

func GetGeminiClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, modelName, apikey)
	})

	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func newGeminiClient(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
	go closeClient(ctx, geminiClient)
}

func (c *llmClient) Complete(ctx context.Context, history []chatModel.Turn, temperature float64, maxTokens int64) (string, error) {
	var systemInstruction *genai.Content
	contents := make([]*genai.Content, 0, len(history))

	for _, turn := range history {
		part := []*genai.Part{{Text: turn.Content}}
		switch turn.Role {
		case chatModel.RoleSystem:
			systemInstruction = &genai.Content{Parts: part}
		case chatModel.RoleAssistant:
			contents = append(contents, &genai.Content{Role: genai.RoleModel, Parts: part})
		default:
			contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: part})
		}
	}

	temp := float32(temperature)
	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction,
		Temperature:       &temp,
	}
	if maxTokens > 0 {
		contentConfig.MaxOutputTokens = int32(maxTokens)
	}

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, contentConfig)
	if err != nil {
		logger.Error("Gemini generation failed", "error", err)
		return "", &llm.OracleError{Err: err}
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", &llm.OracleError{Err: errors.New("no candidates returned")}
	}
	return result.Text(), nil
}

func closeClient(ctx context.Context, llm *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	llm.client = nil
	llm.modelName = ""
}
