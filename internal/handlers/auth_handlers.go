// File: internal/handlers/auth_handlers.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/nkarimof/go-dialogue/internal/domain"
	"github.com/nkarimof/go-dialogue/internal/dtos"
	"github.com/nkarimof/go-dialogue/internal/middleware"
	"github.com/nkarimof/go-dialogue/internal/services/identity"
	"github.com/nkarimof/go-dialogue/internal/services/user_services"
)

// AuthHandler holds the dependencies for authentication handlers.
type AuthHandler struct {
	AuthService *user_services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *user_services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: authService}
}

// GoogleLogin exchanges a Google ID token for a session token. Any
// verification failure is a flat 401; the client learns nothing about why.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req dtos.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		writeError(w, "A token field is required", http.StatusBadRequest)
		return
	}

	account, token, err := h.AuthService.LoginWithGoogle(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidAssertion) {
			writeError(w, "Invalid Google token", http.StatusUnauthorized)
			return
		}
		log.Printf("[AuthHandler] Login error: %v", err)
		writeError(w, "Could not complete login", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dtos.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        account,
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	account, ok := r.Context().Value(middleware.UserKey).(*domain.User)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, account)
}
