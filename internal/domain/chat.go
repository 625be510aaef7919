// File: internal/domain/chat.go
package domain

import "time"

// DefaultChatTitle is used when a chat is created without a title.
const DefaultChatTitle = "New Conversation"

// Chat represents a single conversation thread. The owning user is set at
// creation and never reassigned.
type Chat struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
