// File: internal/domain/message.go
package domain

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is a single immutable message within a chat. History is always
// read back in creation order.
type Message struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ChatID    uint      `json:"chat_id" gorm:"not null;index"`
	Role      string    `json:"role" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValidMessageRole reports whether role is one of the two stored roles.
func IsValidMessageRole(role string) bool {
	return role == MessageRoleUser || role == MessageRoleAssistant
}
