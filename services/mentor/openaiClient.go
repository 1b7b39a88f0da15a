package mentor

import (
	"context"
	"fmt"
	"log"

	"founderforge/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// OpenAIClient is the alternate provider, driven through langchaingo.
type OpenAIClient struct {
	llm llms.Model
}

func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	llm, err := openai.New(
		openai.WithModel("gpt-4o-mini"),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return &OpenAIClient{llm: llm}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, system string, messages []models.Message) (string, error) {
	history := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
	}
	for _, msg := range messages {
		msgType := schema.ChatMessageTypeHuman
		if msg.Role == "assistant" {
			msgType = schema.ChatMessageTypeAI
		}
		history = append(history, llms.TextParts(msgType, msg.Content))
	}

	resp, err := c.llm.GenerateContent(ctx, history,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(maxResponseTokens))
	if err != nil {
		log.Printf("[ERROR] Failed to call OpenAI API: %v", err)
		return "", fmt.Errorf("%w: %v", ErrModelCall, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", fmt.Errorf("%w: empty response", ErrModelCall)
	}
	return resp.Choices[0].Content, nil
}
