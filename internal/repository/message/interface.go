// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/nkarimof/go-dialogue/internal/domain"
)

// MessageRepository handles message data operations. Messages are append
// only; ownership of the parent chat is the caller's responsibility.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByChatID(ctx context.Context, chatID uint) ([]domain.Message, error)
	CountByChatID(ctx context.Context, chatID uint) (int64, error)
}
