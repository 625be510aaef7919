// File: internal/config/config_test.go
package config

import (
	"os"
	"testing"
)

// unsetenv clears a variable for the test while keeping t.Setenv's restore.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://chat.db")
	for _, key := range []string{"ENV", "SERVER_PORT", "LLM_BASE_URL", "LLM_MODEL", "LLM_MAX_TOKENS"} {
		unsetenv(t, key)
	}

	cfg := Load()
	if cfg.ServerPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.ServerPort)
	}
	if cfg.LLMBaseURL != "http://localhost:8000/v1" {
		t.Fatalf("unexpected LLM base URL %q", cfg.LLMBaseURL)
	}
	if cfg.LLMModel != "dialogpt-finetuned" {
		t.Fatalf("unexpected model %q", cfg.LLMModel)
	}
	if cfg.LLMMaxTokens != 100 {
		t.Fatalf("unexpected max tokens %d", cfg.LLMMaxTokens)
	}
	if cfg.DatabaseURL != "sqlite://chat.db" {
		t.Fatalf("unexpected database URL %q", cfg.DatabaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/chat")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_MAX_TOKENS", "250")

	cfg := Load()
	if cfg.ServerPort != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.ServerPort)
	}
	if cfg.LLMMaxTokens != 250 {
		t.Fatalf("expected 250 max tokens, got %d", cfg.LLMMaxTokens)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://chat.db")
	t.Setenv("LLM_MAX_TOKENS", "not-a-number")

	cfg := Load()
	if cfg.LLMMaxTokens != 100 {
		t.Fatalf("expected fallback to 100, got %d", cfg.LLMMaxTokens)
	}
}
