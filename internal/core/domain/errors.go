package domain

import "errors"

// Error kinds. Every service error unwraps to exactly one of these.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a user-facing error message tagged with its kind
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Validation returns an ErrInvalidInput error
func Validation(message string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: message}
}

// Unauthorized returns an ErrUnauthorized error
func Unauthorized(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

// Forbidden returns an ErrForbidden error
func Forbidden(message string) *Error {
	return &Error{Kind: ErrForbidden, Message: message}
}

// NotFound returns an ErrNotFound error
func NotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Conflict returns an ErrConflict error
func Conflict(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}
