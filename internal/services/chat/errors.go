// File: internal/services/chat/errors.go
package chat

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeGeneration ErrorType = "GENERATION"
	ErrTypeStorage    ErrorType = "STORAGE"
)

type ChatError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *ChatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Chat %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Chat %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ChatError) Unwrap() error { return e.Cause }

func NewValidationError(operation, msg string) *ChatError {
	return &ChatError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

// NewNotFoundError deliberately carries the same message whether the chat is
// missing or owned by another user.
func NewNotFoundError(operation string) *ChatError {
	return &ChatError{Type: ErrTypeNotFound, Operation: operation, Message: "chat not found"}
}

func NewGenerationError(operation string, cause error) *ChatError {
	return &ChatError{Type: ErrTypeGeneration, Operation: operation, Message: "response generation failed", Cause: cause}
}

func NewStorageError(operation, msg string, cause error) *ChatError {
	return &ChatError{Type: ErrTypeStorage, Operation: operation, Message: msg, Cause: cause}
}

func isType(err error, t ErrorType) bool {
	var ce *ChatError
	return errors.As(err, &ce) && ce.Type == t
}

// IsNotFound reports whether err is the indistinguishable not-found/not-owned
// condition.
func IsNotFound(err error) bool { return isType(err, ErrTypeNotFound) }

// IsGenerationFailure reports whether err came from the generation
// collaborator.
func IsGenerationFailure(err error) bool { return isType(err, ErrTypeGeneration) }

// IsValidation reports whether err is a malformed-request condition.
func IsValidation(err error) bool { return isType(err, ErrTypeValidation) }
