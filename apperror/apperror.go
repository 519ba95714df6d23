package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it should map to.
// Handlers write Error.Message to the client; Err keeps the underlying
// cause for logs and is never serialized.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidCredentials = &Error{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	ErrUserExists         = &Error{StatusCode: http.StatusConflict, Message: "User already exists"}
	ErrNoteNotFound       = &Error{StatusCode: http.StatusNotFound, Message: "Note not found"}
	ErrInvalidNoteID      = &Error{StatusCode: http.StatusBadRequest, Message: "Invalid note ID"}
	ErrMissingToken       = &Error{StatusCode: http.StatusUnauthorized, Message: "Missing or invalid token"}
	ErrInvalidToken       = &Error{StatusCode: http.StatusUnauthorized, Message: "Invalid token"}
	ErrTokenExpired       = &Error{StatusCode: http.StatusUnauthorized, Message: "Token has expired"}
)

// NewValidation builds a 400 error with a caller-facing message.
func NewValidation(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

// NewInternal wraps an unexpected failure. The message is what the client
// sees; the wrapped error stays server-side.
func NewInternal(message string, err error) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// FromError maps any error to an *Error. Unknown errors become a generic
// 500 so infrastructure details never leak to the client.
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{StatusCode: http.StatusInternalServerError, Message: "Server error", Err: err}
}

// StatusCode returns the HTTP status for err.
func StatusCode(err error) int {
	return FromError(err).StatusCode
}
