// File: internal/repository/user/interface.go
package user

import (
	"context"

	"github.com/nkarimof/go-dialogue/internal/domain"
)

// UserRepository handles user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	// UpsertByGoogleID creates the user on first login and refreshes
	// name/picture on later logins. Idempotent with respect to googleID.
	UpsertByGoogleID(ctx context.Context, googleID, email, name, picture string) (*domain.User, error)
}
