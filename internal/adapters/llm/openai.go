package llm

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
	"github.com/finwyse/fin_tracker_app/internal/platform/config"
	openai "github.com/sashabaranov/go-openai"
)

const requestTimeout = 60 * time.Second

// OpenAIAdapter implements the Advisor port against an OpenAI-compatible chat
// completion API. The base URL override allows pointing it at a local model
// server.
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter builds the adapter from configuration.
func NewOpenAIAdapter(cfg *config.Config) *OpenAIAdapter {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAIModel,
	}
}

var _ portsrepo.Advisor = (*OpenAIAdapter)(nil)

// GenerateAdvice sends the prompt as a single user message and returns the
// model's text.
func (a *OpenAIAdapter) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
