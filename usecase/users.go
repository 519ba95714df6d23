package usecase

import (
	"context"
	"time"

	"main/apperror"
	"main/dto"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

// AuthService orchestrates signup and login against the user store and
// the token service.
type AuthService struct {
	UserRepo *repository.UserRepo
	Tokens   *services.TokenService
}

// AuthResult is what both auth operations hand back to the handler.
type AuthResult struct {
	Token string
	User  dto.UserResponse
}

// Signup validates the request, hashes the password, persists the user
// and issues a session token.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*AuthResult, error) {
	if len(req.Password) < 6 {
		utils.TrackAuthAttempt("failure", "signup")
		return nil, apperror.NewValidation("Password must be at least 6 characters")
	}

	existing, err := s.UserRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.NewInternal("Server error", err)
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "signup")
		return nil, apperror.ErrUserExists
	}

	hashedPassword, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternal("Server error", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The unique email index backstops the lookup above against a
	// concurrent signup with the same address.
	id, err := s.UserRepo.AddUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	token, err := s.Tokens.Generate(id.Hex(), user.Email)
	if err != nil {
		return nil, apperror.NewInternal("Server error", err)
	}

	utils.TrackAuthAttempt("success", "signup")
	return &AuthResult{Token: token, User: dto.ToUserResponse(user)}, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password return the identical error so neither check leaks.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*AuthResult, error) {
	user, err := s.UserRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.NewInternal("Server error", err)
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, apperror.ErrInvalidCredentials
	}

	if !services.VerifyPassword(user.Password, req.Password) {
		utils.TrackAuthAttempt("failure", "login")
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.Tokens.Generate(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, apperror.NewInternal("Server error", err)
	}

	utils.TrackAuthAttempt("success", "login")
	return &AuthResult{Token: token, User: dto.ToUserResponse(user)}, nil
}
