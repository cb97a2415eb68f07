package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
// Sentinels shared by the services; handlers translate them to HTTP
// statuses. Not-found errors deliberately cover both "does not exist" and
// "exists but belongs to someone else".
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrEmailInUse         = errors.New("email already in use")
	ErrSameEmail          = errors.New("new email is the same as the current email")
	ErrSamePassword       = errors.New("new password is the same as the current password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("user is not authorized")
	ErrHashingFailed      = errors.New("failed to hash password")
	ErrTokenGeneration    = errors.New("failed to generate authentication token")
)

// ValidationError reports a request field that failed a policy check.
// The message is safe to surface to the caller as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidField(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
