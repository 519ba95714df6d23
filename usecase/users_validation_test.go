package usecase

import (
	"context"
	"testing"

	"main/apperror"
	"main/dto"
)

func TestSignupRejectsShortPassword(t *testing.T) {
	// Password length is checked before the store is consulted.
	svc := &AuthService{}

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Name:     "T",
		Email:    "t@x.com",
		Password: "12345",
	})
	if err == nil {
		t.Fatal("Expected error for short password")
	}

	appErr := apperror.FromError(err)
	if appErr.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", appErr.StatusCode)
	}
	if appErr.Message != "Password must be at least 6 characters" {
		t.Errorf("Unexpected message: %q", appErr.Message)
	}
}
