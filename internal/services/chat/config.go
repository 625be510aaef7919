// File: internal/services/chat/config.go
package chat

import "fmt"

type Config struct {
	// MaxTokens caps each generated response.
	MaxTokens int
	// MaxContentLength caps an incoming user message.
	MaxContentLength int
	// TitleMaxLength caps a chat title; longer titles are truncated.
	TitleMaxLength int
}

func (c *Config) Validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be positive")
	}
	if c.TitleMaxLength <= 0 {
		return fmt.Errorf("title_max_length must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		MaxTokens:        100,
		MaxContentLength: 10000,
		TitleMaxLength:   100,
	}
}
