// File: internal/handlers/chat_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nkarimof/go-dialogue/internal/domain"
	"github.com/nkarimof/go-dialogue/internal/dtos"
	"github.com/nkarimof/go-dialogue/internal/middleware"
	chatrepo "github.com/nkarimof/go-dialogue/internal/repository/chat"
	"github.com/nkarimof/go-dialogue/internal/repository/message"
	"github.com/nkarimof/go-dialogue/internal/services"
	chatservice "github.com/nkarimof/go-dialogue/internal/services/chat"
)

type scriptedProvider struct {
	reply string
	err   error
}

func (p *scriptedProvider) GetCompletion(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return p.reply, p.err
}

func newChatRouter(t *testing.T, provider *scriptedProvider) (*mux.Router, *services.ChatService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Chat{}, &domain.Message{}))

	svc, err := services.NewChatService(
		chatrepo.NewChatRepository(db),
		message.NewMessageRepository(db),
		provider,
		chatservice.DefaultConfig(),
		&services.NoOpLogger{},
	)
	require.NoError(t, err)

	h := NewChatHandler(svc)
	router := mux.NewRouter()
	router.HandleFunc("/api/chats", h.GetUserChats).Methods(http.MethodGet)
	router.HandleFunc("/api/chats", h.CreateChat).Methods(http.MethodPost)
	router.HandleFunc("/api/chats/{id}", h.GetChat).Methods(http.MethodGet)
	router.HandleFunc("/api/chats/{id}", h.DeleteChat).Methods(http.MethodDelete)
	router.HandleFunc("/api/chats/{id}/messages", h.SendMessage).Methods(http.MethodPost)
	return router, svc
}

func doAs(router *mux.Router, userID uint, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateChat_DefaultsTitleOnEmptyBody(t *testing.T) {
	router, _ := newChatRouter(t, &scriptedProvider{})

	rec := doAs(router, 1, http.MethodPost, "/api/chats", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var chat domain.Chat
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&chat))
	require.Equal(t, domain.DefaultChatTitle, chat.Title)
	require.NotZero(t, chat.ID)
}

func TestCreateChat_BodyHandling(t *testing.T) {
	router, _ := newChatRouter(t, &scriptedProvider{})

	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/chats", strings.NewReader(body))
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, uint(1)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	// No body at all still creates a chat with the default title.
	rec := send("")
	require.Equal(t, http.StatusCreated, rec.Code)
	var chat domain.Chat
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&chat))
	require.Equal(t, domain.DefaultChatTitle, chat.Title)

	// A body that is present but not valid JSON is a 400, not a silent default.
	rec = send(`{"title":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = send("not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_ReturnsBothMessages(t *testing.T) {
	router, svc := newChatRouter(t, &scriptedProvider{reply: "pong"})
	created, err := svc.CreateChat(context.Background(), 1, "t")
	require.NoError(t, err)

	path := fmt.Sprintf("/api/chats/%d/messages", created.ID)
	rec := doAs(router, 1, http.MethodPost, path, `{"content":"ping"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.TurnResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "ping", resp.UserMessage.Content)
	require.Equal(t, "pong", resp.AssistantMessage.Content)
}

func TestSendMessage_StatusMapping(t *testing.T) {
	provider := &scriptedProvider{reply: "pong"}
	router, svc := newChatRouter(t, provider)
	created, err := svc.CreateChat(context.Background(), 1, "t")
	require.NoError(t, err)
	path := fmt.Sprintf("/api/chats/%d/messages", created.ID)

	// Empty content is a 400.
	rec := doAs(router, 1, http.MethodPost, path, `{"content":"  "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Someone else's chat is a flat 404.
	rec = doAs(router, 2, http.MethodPost, path, `{"content":"ping"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// A missing chat reads identically.
	rec = doAs(router, 1, http.MethodPost, "/api/chats/9999/messages", `{"content":"ping"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Generation failure is a 500 with a stable message.
	provider.err = errors.New("model unavailable")
	rec = doAs(router, 1, http.MethodPost, path, `{"content":"ping"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "Response generation failed", body["error"])
}

func TestGetChat_NotOwnedAndMissingReadIdentically(t *testing.T) {
	router, svc := newChatRouter(t, &scriptedProvider{})
	created, err := svc.CreateChat(context.Background(), 1, "mine")
	require.NoError(t, err)

	notOwned := doAs(router, 2, http.MethodGet, fmt.Sprintf("/api/chats/%d", created.ID), "")
	missing := doAs(router, 1, http.MethodGet, "/api/chats/9999", "")
	require.Equal(t, http.StatusNotFound, notOwned.Code)
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, notOwned.Body.String(), missing.Body.String())
}

func TestGetChat_ReturnsHistoryInOrder(t *testing.T) {
	router, svc := newChatRouter(t, &scriptedProvider{reply: "pong"})
	ctx := context.Background()
	created, err := svc.CreateChat(ctx, 1, "t")
	require.NoError(t, err)
	_, _, err = svc.GenerateTurn(ctx, 1, created.ID, "ping")
	require.NoError(t, err)

	rec := doAs(router, 1, http.MethodGet, fmt.Sprintf("/api/chats/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.ChatDetailResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, created.ID, resp.Chat.ID)
	require.Len(t, resp.Messages, 2)
	require.Equal(t, domain.MessageRoleUser, resp.Messages[0].Role)
	require.Equal(t, domain.MessageRoleAssistant, resp.Messages[1].Role)
}

func TestDeleteChat_NoContentThenGone(t *testing.T) {
	router, svc := newChatRouter(t, &scriptedProvider{})
	created, err := svc.CreateChat(context.Background(), 1, "t")
	require.NoError(t, err)
	path := fmt.Sprintf("/api/chats/%d", created.ID)

	require.Equal(t, http.StatusNotFound, doAs(router, 2, http.MethodDelete, path, "").Code)
	require.Equal(t, http.StatusNoContent, doAs(router, 1, http.MethodDelete, path, "").Code)
	require.Equal(t, http.StatusNotFound, doAs(router, 1, http.MethodGet, path, "").Code)
}

func TestChatEndpoints_InvalidID(t *testing.T) {
	router, _ := newChatRouter(t, &scriptedProvider{})

	rec := doAs(router, 1, http.MethodGet, "/api/chats/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doAs(router, 1, http.MethodGet, "/api/chats/0", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListChats_OnlyOwn(t *testing.T) {
	router, svc := newChatRouter(t, &scriptedProvider{})
	ctx := context.Background()
	_, err := svc.CreateChat(ctx, 1, "mine")
	require.NoError(t, err)
	_, err = svc.CreateChat(ctx, 2, "theirs")
	require.NoError(t, err)

	rec := doAs(router, 1, http.MethodGet, "/api/chats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var chats []domain.Chat
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&chats))
	require.Len(t, chats, 1)
	require.Equal(t, "mine", chats[0].Title)
}
