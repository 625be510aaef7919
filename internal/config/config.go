// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	Environment    string
	JWTSecretKey   string
	GoogleClientID string
	// DatabaseURL points at the relational store. Startup is fatal without it.
	DatabaseURL string
	// Local OpenAI-compatible inference server for response generation.
	LLMBaseURL   string
	LLMAPIKey    string
	LLMModel     string
	LLMMaxTokens int
}

// Load reads configuration from environment variables or a .env file.
// It terminates the process when DATABASE_URL is missing, and in production
// when the signing secret or Google client id is missing.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    env,
		JWTSecretKey:   getEnv("JWT_SECRET_KEY", ""),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		LLMBaseURL:     getEnv("LLM_BASE_URL", "http://localhost:8000/v1"),
		LLMAPIKey:      getEnv("LLM_API_KEY", "local"),
		LLMModel:       getEnv("LLM_MODEL", "dialogpt-finetuned"),
		LLMMaxTokens:   getEnvAsInt("LLM_MAX_TOKENS", 100),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if cfg.GoogleClientID == "" {
			missing = append(missing, "GOOGLE_CLIENT_ID")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
