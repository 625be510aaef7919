// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkarimof/go-dialogue/internal/dtos"
	"github.com/nkarimof/go-dialogue/internal/middleware"
	"github.com/nkarimof/go-dialogue/internal/services"
	chatservice "github.com/nkarimof/go-dialogue/internal/services/chat"
)

type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(cs *services.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: cs}
}

// GetUserChats lists the requesting user's conversations, most recently
// active first.
func (h *ChatHandler) GetUserChats(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(uint)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chats, err := h.ChatService.GetUserChats(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not retrieve chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(uint)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// An empty body is fine: the title defaults. A present but malformed
	// body is not.
	var req dtos.CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	chat, err := h.ChatService.CreateChat(r.Context(), userID, req.Title)
	if err != nil {
		writeError(w, "Could not create chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, chat)
}

// GetChat returns a conversation with its messages in creation order.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(uint)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chatID, ok := chatIDFromRequest(w, r)
	if !ok {
		return
	}

	chat, messages, err := h.ChatService.GetChat(r.Context(), userID, chatID)
	if err != nil {
		if chatservice.IsNotFound(err) {
			writeError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve conversation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dtos.ChatDetailResponse{Chat: chat, Messages: messages})
}

func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(uint)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chatID, ok := chatIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.ChatService.DeleteChat(r.Context(), userID, chatID); err != nil {
		if chatservice.IsNotFound(err) {
			writeError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not delete conversation", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SendMessage runs one generation turn. On generation failure the user
// message is already stored; the client gets a 500 with a stable message and
// no internal detail.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(uint)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chatID, ok := chatIDFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "A content field is required", http.StatusBadRequest)
		return
	}

	userMessage, assistantMessage, err := h.ChatService.GenerateTurn(r.Context(), userID, chatID, req.Content)
	if err != nil {
		switch {
		case chatservice.IsNotFound(err):
			writeError(w, "Conversation not found", http.StatusNotFound)
		case chatservice.IsValidation(err):
			writeError(w, "A non-empty content field is required", http.StatusBadRequest)
		case chatservice.IsGenerationFailure(err):
			log.Printf("[ChatHandler] Generation failed for chat %d: %v", chatID, err)
			writeError(w, "Response generation failed", http.StatusInternalServerError)
		default:
			writeError(w, "Could not process message", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, dtos.TurnResponse{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	})
}

func chatIDFromRequest(w http.ResponseWriter, r *http.Request) (uint, bool) {
	chatID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || chatID == 0 {
		writeError(w, "Invalid chat ID", http.StatusBadRequest)
		return 0, false
	}
	return uint(chatID), true
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
