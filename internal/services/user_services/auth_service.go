// File: internal/services/user_services/auth_service.go
package user_services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nkarimof/go-dialogue/internal/domain"
	"github.com/nkarimof/go-dialogue/internal/repository/user"
	"github.com/nkarimof/go-dialogue/internal/services/identity"
)

// DefaultTokenTTL is how long a session credential stays valid after issue.
const DefaultTokenTTL = 7 * 24 * time.Hour

// AuthService mints and validates session tokens and runs the Google login
// flow. The signing secret is fixed for the process lifetime; there is no
// rotation or revocation.
type AuthService struct {
	userRepo     user.UserRepository
	verifier     identity.Verifier
	jwtSecretKey []byte
	tokenTTL     time.Duration
	logger       Logger
}

func NewAuthService(userRepo user.UserRepository, verifier identity.Verifier, jwtSecretKey string, logger Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		verifier:     verifier,
		jwtSecretKey: []byte(jwtSecretKey),
		tokenTTL:     DefaultTokenTTL,
		logger:       logger,
	}
}

// LoginWithGoogle verifies the identity assertion, creates or refreshes the
// local user, and issues a session token for it.
func (s *AuthService) LoginWithGoogle(ctx context.Context, assertion string) (*domain.User, string, error) {
	claims, err := s.verifier.Verify(ctx, assertion)
	if err != nil {
		s.logger.Warn("google login failed - assertion rejected", "error", err.Error())
		return nil, "", err
	}

	account, err := s.userRepo.UpsertByGoogleID(ctx, claims.Subject, claims.Email, claims.Name, claims.Picture)
	if err != nil {
		s.logger.Error("google login failed - upsert error", "error", err)
		return nil, "", fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := s.IssueToken(account.ID)
	if err != nil {
		s.logger.Error("session token generation failed", "error", err, "user_id", account.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("google login successful", "user_id", account.ID)
	return account, token, nil
}

// IssueToken mints a signed session token for userID. Stateless: nothing is
// persisted, the credential is self-contained.
func (s *AuthService) IssueToken(userID uint) (string, error) {
	if userID == 0 {
		return "", errors.New("user ID cannot be zero")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecretKey)
}

// ValidateToken verifies signature and expiry and returns the embedded user
// id. Expiry is reported separately from every other failure; whether that id
// still resolves to a user is the caller's problem.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrTokenInvalid
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, ErrTokenInvalid
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, ErrTokenInvalid
	}

	return uint(userID), nil
}
