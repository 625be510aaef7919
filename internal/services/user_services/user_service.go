// File: internal/services/user_services/user_service.go
package user_services

import (
	"context"
	"errors"

	"github.com/nkarimof/go-dialogue/internal/domain"
	"github.com/nkarimof/go-dialogue/internal/repository/user"
)

// UserService resolves authenticated subjects to stored users.
type UserService struct {
	userRepo user.UserRepository
	logger   Logger
}

func NewUserService(userRepo user.UserRepository, logger Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// FindByID returns the user for a session subject. A valid credential whose
// subject has no matching row is ErrUserNotFound, not a token error.
func (s *UserService) FindByID(ctx context.Context, userID uint) (*domain.User, error) {
	account, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("user lookup failed", "user_id", userID, "error", err)
		return nil, err
	}
	return account, nil
}
