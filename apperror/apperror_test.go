package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewValidation("Title is required"), http.StatusBadRequest},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"conflict", ErrUserExists, http.StatusConflict},
		{"not found", ErrNoteNotFound, http.StatusNotFound},
		{"invalid note id", ErrInvalidNoteID, http.StatusBadRequest},
		{"expired token", ErrTokenExpired, http.StatusUnauthorized},
		{"internal", NewInternal("Server error", errors.New("boom")), http.StatusInternalServerError},
		{"unknown error", errors.New("driver exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.expected {
				t.Errorf("StatusCode(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestFromErrorHidesInternals(t *testing.T) {
	cause := errors.New("connection string user:pass@host refused")
	appErr := FromError(cause)

	if appErr.Message != "Server error" {
		t.Errorf("Expected generic message, got %q", appErr.Message)
	}
	if appErr.Unwrap() != cause {
		t.Error("Expected the cause to stay wrapped for logs")
	}
}

func TestFromErrorUnwrapsNestedAppError(t *testing.T) {
	wrapped := fmt.Errorf("updating note: %w", ErrNoteNotFound)
	if got := StatusCode(wrapped); got != http.StatusNotFound {
		t.Errorf("StatusCode(wrapped) = %d, want %d", got, http.StatusNotFound)
	}
	if FromError(wrapped).Message != "Note not found" {
		t.Errorf("Expected wrapped message to surface, got %q", FromError(wrapped).Message)
	}
}
