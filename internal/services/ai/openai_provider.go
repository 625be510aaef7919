// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider talks to a local inference server through its
// OpenAI-compatible completions endpoint. The prompt is passed through
// verbatim; the model continues it.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL
	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (p *OpenAIProvider) GetCompletion(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = p.config.MaxTokens
	}

	resp, err := p.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       p.config.Model,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: p.config.Temperature,
		TopP:        p.config.TopP,
	})
	if err != nil {
		return "", NewProviderError("completion", "failed to create completion", err)
	}

	if len(resp.Choices) == 0 {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Message:   "empty completion response",
		}
	}

	return strings.TrimSpace(resp.Choices[0].Text), nil
}
