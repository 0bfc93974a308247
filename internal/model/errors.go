package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches the query.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a resource exists but belongs to another user.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned on unique-constraint violations, e.g. a duplicate email.
	ErrConflict = errors.New("email already registered")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// ValidationError reports missing or malformed request input.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
