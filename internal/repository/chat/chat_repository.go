// File: internal/repository/chat/chat_repository.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nkarimof/go-dialogue/internal/domain"
)

// ErrChatNotFound covers both a missing chat and a chat owned by another
// user. Callers must not be able to tell the two apart.
var ErrChatNotFound = errors.New("chat not found")

const maxTitleLength = 200

type gormChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

func (r *gormChatRepository) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	if err := r.validateChatInput(chat); err != nil {
		log.Printf("[ChatRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if chat.Title == "" {
		chat.Title = domain.DefaultChatTitle
	}

	if err := r.db.WithContext(ctx).Create(chat).Error; err != nil {
		log.Printf("[ChatRepository] Database error during chat creation for user ID %d: %v", chat.UserID, err)
		return nil, errors.New("database error creating chat")
	}

	log.Printf("[ChatRepository] Chat created successfully with ID: %d for user: %d", chat.ID, chat.UserID)
	return chat, nil
}

func (r *gormChatRepository) FindByIDAndUserID(ctx context.Context, chatID, userID uint) (*domain.Chat, error) {
	if chatID == 0 || userID == 0 {
		return nil, errors.New("invalid chat ID or user ID")
	}

	var chat domain.Chat
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", chatID, userID).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		log.Printf("[ChatRepository] Database error finding chat ID %d: %v", chatID, err)
		return nil, errors.New("database query failed")
	}
	return &chat, nil
}

func (r *gormChatRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Chat, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var chats []domain.Chat
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Find(&chats).Error
	if err != nil {
		log.Printf("[ChatRepository] Database error finding chats for user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching chats")
	}
	return chats, nil
}

// Delete removes the chat and all of its messages in a single transaction.
// The ownership predicate is part of the delete itself: zero rows affected
// means not found, whether the chat is missing or owned by someone else.
func (r *gormChatRepository) Delete(ctx context.Context, chatID, userID uint) error {
	if chatID == 0 || userID == 0 {
		return errors.New("invalid chat ID or user ID")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", chatID, userID).Delete(&domain.Chat{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrChatNotFound
		}
		return tx.Where("chat_id = ?", chatID).Delete(&domain.Message{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrChatNotFound) {
			return ErrChatNotFound
		}
		log.Printf("[ChatRepository] Database error deleting chat ID %d for user ID %d: %v", chatID, userID, err)
		return errors.New("database error deleting chat")
	}

	log.Printf("[ChatRepository] Chat deleted successfully: ID %d for user %d", chatID, userID)
	return nil
}

func (r *gormChatRepository) TouchUpdatedAt(ctx context.Context, chatID uint) error {
	if chatID == 0 {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Chat{}).
		Where("id = ?", chatID).
		Update("updated_at", time.Now())
	if result.Error != nil {
		log.Printf("[ChatRepository] Database error updating timestamp for chat ID %d: %v", chatID, result.Error)
		return errors.New("database error updating chat timestamp")
	}
	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}
	return nil
}

func (r *gormChatRepository) validateChatInput(chat *domain.Chat) error {
	if chat == nil {
		return errors.New("chat cannot be nil")
	}
	if chat.UserID == 0 {
		return errors.New("user ID is required")
	}
	if len(chat.Title) > maxTitleLength {
		return fmt.Errorf("title must be %d characters or less", maxTitleLength)
	}
	return nil
}
