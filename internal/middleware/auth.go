// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/nkarimof/go-dialogue/internal/services/user_services"
)

// NewJWTMiddleware validates the bearer session token and resolves its
// subject against the user store. A valid token whose subject no longer
// exists is rejected exactly like a bad token: 401 either way, no detail.
func NewJWTMiddleware(authService *user_services.AuthService, userService *user_services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeAuthError(w, "Invalid authentication credentials")
				return
			}

			userID, err := authService.ValidateToken(token)
			if err != nil {
				log.Printf("[AuthMiddleware] Invalid token: %v", err)
				if errors.Is(err, user_services.ErrTokenExpired) {
					writeAuthError(w, "Token has expired")
					return
				}
				writeAuthError(w, "Invalid authentication credentials")
				return
			}

			account, err := userService.FindByID(r.Context(), userID)
			if err != nil {
				log.Printf("[AuthMiddleware] Subject did not resolve: %v", err)
				writeAuthError(w, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, account.ID)
			ctx = context.WithValue(ctx, UserKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
