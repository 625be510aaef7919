// File: internal/dtos/dtos.go
package dtos

import "github.com/nkarimof/go-dialogue/internal/domain"

// GoogleLoginRequest carries the Google ID token from the client.
type GoogleLoginRequest struct {
	Token string `json:"token"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

type CreateChatRequest struct {
	Title string `json:"title"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

// ChatDetailResponse is a chat with its full ordered history.
type ChatDetailResponse struct {
	Chat     *domain.Chat     `json:"chat"`
	Messages []domain.Message `json:"messages"`
}

// TurnResponse is one completed generation turn.
type TurnResponse struct {
	UserMessage      *domain.Message `json:"user_message"`
	AssistantMessage *domain.Message `json:"assistant_message"`
}
