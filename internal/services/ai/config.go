// File: internal/services/ai/config.go
package ai

import "fmt"

type Config struct {
	// BaseURL of the locally hosted OpenAI-compatible inference server.
	BaseURL string
	// APIKey is whatever the local server expects; "local" for most.
	APIKey string
	Model  string

	// Sampling parameters for the causal language model.
	MaxTokens   int
	Temperature float32
	TopP        float32
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("LLM_BASE_URL is required")
	}
	if c.Model == "" {
		return fmt.Errorf("LLM_MODEL is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "http://localhost:8000/v1",
		APIKey:      "local",
		Model:       "dialogpt-finetuned",
		MaxTokens:   100,
		Temperature: 0.7,
		TopP:        0.9,
	}
}
