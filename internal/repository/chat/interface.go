// File: internal/repository/chat/interface.go
package chat

import (
	"context"

	"github.com/nkarimof/go-dialogue/internal/domain"
)

// ChatRepository handles chat data operations. Every read and delete that
// takes a userID is scoped to that user; a chat owned by someone else is
// reported exactly like a chat that does not exist.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	FindByIDAndUserID(ctx context.Context, chatID, userID uint) (*domain.Chat, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Chat, error)
	Delete(ctx context.Context, chatID, userID uint) error
	TouchUpdatedAt(ctx context.Context, chatID uint) error
}
