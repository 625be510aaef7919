// File: internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/nkarimof/go-dialogue/internal/domain"
	chatrepo "github.com/nkarimof/go-dialogue/internal/repository/chat"
	"github.com/nkarimof/go-dialogue/internal/repository/message"
	"github.com/nkarimof/go-dialogue/internal/services/ai"
	chatservice "github.com/nkarimof/go-dialogue/internal/services/chat"
)

// ChatService owns conversation state and the generation turn. The store
// trusts it to have checked ownership; the handlers trust it to classify
// failures.
type ChatService struct {
	config      *chatservice.Config
	chatRepo    chatrepo.ChatRepository
	messageRepo message.MessageRepository
	aiProvider  ai.CompletionProvider
	logger      Logger
}

func NewChatService(
	chatRepo chatrepo.ChatRepository,
	messageRepo message.MessageRepository,
	aiProvider ai.CompletionProvider,
	config *chatservice.Config,
	logger Logger,
) (*ChatService, error) {
	if chatRepo == nil {
		return nil, chatservice.NewValidationError("constructor", "chat repository is required")
	}
	if messageRepo == nil {
		return nil, chatservice.NewValidationError("constructor", "message repository is required")
	}
	if aiProvider == nil {
		return nil, chatservice.NewValidationError("constructor", "completion provider is required")
	}
	if config == nil {
		config = chatservice.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, chatservice.NewValidationError("config", err.Error())
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	return &ChatService{
		config:      config,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		aiProvider:  aiProvider,
		logger:      logger,
	}, nil
}

// CreateChat starts a new conversation owned by userID. A blank title falls
// back to the default placeholder.
func (s *ChatService) CreateChat(ctx context.Context, userID uint, title string) (*domain.Chat, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = domain.DefaultChatTitle
	}
	if len(title) > s.config.TitleMaxLength {
		title = title[:s.config.TitleMaxLength]
	}

	created, err := s.chatRepo.Create(ctx, &domain.Chat{UserID: userID, Title: title})
	if err != nil {
		return nil, chatservice.NewStorageError("create_chat", "could not create chat", err)
	}

	s.logger.Info("chat created", "chat_id", created.ID, "user_id", userID)
	return created, nil
}

func (s *ChatService) GetUserChats(ctx context.Context, userID uint) ([]domain.Chat, error) {
	chats, err := s.chatRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, chatservice.NewStorageError("list_chats", "could not list chats", err)
	}
	return chats, nil
}

// GetChat returns the chat and its full ordered history. A chat that does
// not exist and a chat owned by another user are the same failure.
func (s *ChatService) GetChat(ctx context.Context, userID, chatID uint) (*domain.Chat, []domain.Message, error) {
	chatRecord, err := s.chatRepo.FindByIDAndUserID(ctx, chatID, userID)
	if err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			return nil, nil, chatservice.NewNotFoundError("get_chat")
		}
		return nil, nil, chatservice.NewStorageError("get_chat", "could not load chat", err)
	}

	messages, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, nil, chatservice.NewStorageError("get_chat", "could not load messages", err)
	}
	return chatRecord, messages, nil
}

func (s *ChatService) DeleteChat(ctx context.Context, userID, chatID uint) error {
	err := s.chatRepo.Delete(ctx, chatID, userID)
	if err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			return chatservice.NewNotFoundError("delete_chat")
		}
		return chatservice.NewStorageError("delete_chat", "could not delete chat", err)
	}
	s.logger.Info("chat deleted", "chat_id", chatID, "user_id", userID)
	return nil
}

// GenerateTurn appends the user message, runs one generation attempt over the
// full history, and appends the assistant reply. The user message is kept
// even when generation fails; there is exactly one attempt, no retries.
func (s *ChatService) GenerateTurn(ctx context.Context, userID, chatID uint, content string) (*domain.Message, *domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil, chatservice.NewValidationError("generate_turn", "message content cannot be empty")
	}
	if len(content) > s.config.MaxContentLength {
		return nil, nil, chatservice.NewValidationError("generate_turn", "message content too long")
	}

	// Ownership gate. Everything below trusts this check.
	if _, err := s.chatRepo.FindByIDAndUserID(ctx, chatID, userID); err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			return nil, nil, chatservice.NewNotFoundError("generate_turn")
		}
		return nil, nil, chatservice.NewStorageError("generate_turn", "could not load chat", err)
	}

	userMessage, err := s.messageRepo.Create(ctx, &domain.Message{
		ChatID:  chatID,
		Role:    domain.MessageRoleUser,
		Content: content,
	})
	if err != nil {
		return nil, nil, chatservice.NewStorageError("generate_turn", "could not save user message", err)
	}
	s.touch(ctx, chatID)

	// Reload so the prompt includes the message just appended, in order.
	history, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, nil, chatservice.NewStorageError("generate_turn", "could not load history", err)
	}
	prompt := chatservice.BuildPrompt(history)

	reply, err := s.aiProvider.GetCompletion(ctx, prompt, s.config.MaxTokens)
	if err != nil {
		// The user message stays: it was a real user action. The turn is
		// reported failed instead of half-persisted.
		s.logger.Error("generation failed", "chat_id", chatID, "user_id", userID, "error", err)
		return userMessage, nil, chatservice.NewGenerationError("generate_turn", err)
	}
	// Normalization is owned here, whatever the provider returned.
	reply = strings.TrimSpace(reply)
	if reply == "" {
		s.logger.Error("generation returned empty reply", "chat_id", chatID, "user_id", userID)
		return userMessage, nil, chatservice.NewGenerationError("generate_turn", errors.New("empty completion"))
	}

	assistantMessage, err := s.messageRepo.Create(ctx, &domain.Message{
		ChatID:  chatID,
		Role:    domain.MessageRoleAssistant,
		Content: reply,
	})
	if err != nil {
		return userMessage, nil, chatservice.NewStorageError("generate_turn", "could not save assistant message", err)
	}
	s.touch(ctx, chatID)

	s.logger.Info("turn completed", "chat_id", chatID, "user_id", userID,
		"prompt_length", len(prompt), "reply_length", len(reply))
	return userMessage, assistantMessage, nil
}

// touch refreshes the chat's updated_at. Last write wins; a failure here is
// logged and swallowed since the messages themselves are already durable.
func (s *ChatService) touch(ctx context.Context, chatID uint) {
	if err := s.chatRepo.TouchUpdatedAt(ctx, chatID); err != nil {
		s.logger.Warn("could not touch chat timestamp", "chat_id", chatID, "error", err)
	}
}
