// File: internal/services/user_services/types.go
package user_services

import "errors"

// Logger defines the logging interface used by the user services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

var (
	// ErrTokenExpired: signature checks out but the expiry instant has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid: bad signature, malformed token, or unusable subject.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrUserNotFound: the credential is valid but its subject resolves to no
	// stored user. Surfaced as unauthenticated, distinct from token errors.
	ErrUserNotFound = errors.New("user not found")
)
