// File: internal/services/chat/prompt.go
package chat

import (
	"strings"

	"github.com/nkarimof/go-dialogue/internal/domain"
)

const (
	userPrefix      = "User: "
	assistantPrefix = "Bot: "
)

// BuildPrompt renders an ordered message history into the text handed to the
// language model. Each message becomes one line: a role prefix, the content,
// a newline. Deterministic; an empty history yields an empty string.
func BuildPrompt(messages []domain.Message) string {
	var b strings.Builder
	for _, m := range messages {
		if m.Role == domain.MessageRoleUser {
			b.WriteString(userPrefix)
		} else {
			b.WriteString(assistantPrefix)
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}
