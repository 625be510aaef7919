// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nkarimof/go-dialogue/internal/config"
	"github.com/nkarimof/go-dialogue/internal/domain"
	"github.com/nkarimof/go-dialogue/internal/handlers"
	"github.com/nkarimof/go-dialogue/internal/middleware"
	"github.com/nkarimof/go-dialogue/internal/ratelimit"
	chatrepo "github.com/nkarimof/go-dialogue/internal/repository/chat"
	"github.com/nkarimof/go-dialogue/internal/repository/message"
	userrepo "github.com/nkarimof/go-dialogue/internal/repository/user"
	"github.com/nkarimof/go-dialogue/internal/services"
	"github.com/nkarimof/go-dialogue/internal/services/ai"
	chatservice "github.com/nkarimof/go-dialogue/internal/services/chat"
	"github.com/nkarimof/go-dialogue/internal/services/identity"
	"github.com/nkarimof/go-dialogue/internal/services/user_services"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// openDatabase picks the gorm driver from the connection string scheme.
func openDatabase(databaseURL string) (*gorm.DB, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("go_dialogue")

	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.Message{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	userRepo := userrepo.NewGormUserRepository(db)
	chatRepo := chatrepo.NewChatRepository(db)
	messageRepo := message.NewMessageRepository(db)

	// --- Services ---
	verifier, err := identity.NewGoogleVerifier(&identity.Config{ClientID: cfg.GoogleClientID})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize identity verifier: %v", err)
	}

	aiConfig := ai.DefaultConfig()
	aiConfig.BaseURL = cfg.LLMBaseURL
	aiConfig.APIKey = cfg.LLMAPIKey
	aiConfig.Model = cfg.LLMModel
	aiConfig.MaxTokens = cfg.LLMMaxTokens
	if err := aiConfig.Validate(); err != nil {
		log.Fatalf("FATAL: Invalid AI configuration: %v", err)
	}
	aiProvider := ai.NewOpenAIProvider(aiConfig)

	authService := user_services.NewAuthService(userRepo, verifier, cfg.JWTSecretKey, logger)
	userService := user_services.NewUserService(userRepo, logger)

	chatConfig := chatservice.DefaultConfig()
	chatConfig.MaxTokens = cfg.LLMMaxTokens
	chatService, err := services.NewChatService(chatRepo, messageRepo, aiProvider, chatConfig, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Service: %v", err)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)

	// --- Router Setup ---
	r := mux.NewRouter()
	authMiddleware := middleware.NewJWTMiddleware(authService, userService)
	loginLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAuthConfig())
	defer loginLimiter.Stop()

	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	login := r.PathPrefix("/api/auth").Subrouter()
	login.Use(middleware.RateLimitMiddleware(loginLimiter, "login"))
	login.HandleFunc("/google", authHandler.GoogleLogin).Methods("POST")

	// --- Protected Routes ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware)
	api.HandleFunc("/me", authHandler.Me).Methods("GET")
	api.HandleFunc("/chats", chatHandler.GetUserChats).Methods("GET")
	api.HandleFunc("/chats", chatHandler.CreateChat).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}", chatHandler.GetChat).Methods("GET")
	api.HandleFunc("/chats/{id:[0-9]+}", chatHandler.DeleteChat).Methods("DELETE")
	api.HandleFunc("/chats/{id:[0-9]+}/messages", chatHandler.SendMessage).Methods("POST")

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Dialogue backend starting on port %s", port)
	log.Printf("LLM endpoint: %s (model %s)", cfg.LLMBaseURL, cfg.LLMModel)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
