package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"main/apperror"
)

// TokenTTL is how long an issued session token remains valid.
const TokenTTL = 7 * 24 * time.Hour

// TokenClaims is the decoded identity a verified token carries.
type TokenClaims struct {
	UserID string
	Email  string
}

// TokenService signs and verifies session tokens. It is stateless: tokens
// are not persisted and there is no revocation list, so a token stays
// valid for its full lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: TokenTTL}
}

// Generate issues an HS256-signed token carrying the user's identity.
func (s *TokenService) Generate(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// Verify parses and validates a token string, returning its claims.
// Verification is pure: no store lookup happens here.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrTokenExpired
		}
		return nil, apperror.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, apperror.ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &TokenClaims{UserID: userID, Email: email}, nil
}
