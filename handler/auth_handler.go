package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/apperror"
	"main/dto"
	"main/usecase"
	"main/utils"
)

type AuthHandler struct {
	Auth *usecase.AuthService
}

func NewAuthHandler(auth *usecase.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields are required")
		return
	}

	result, err := h.Auth.Signup(c.Request.Context(), req)
	if err != nil {
		if apperror.StatusCode(err) >= 500 {
			log.Printf("Signup error: %v", err)
		}
		utils.Fail(c, err)
		return
	}

	utils.Success(c, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		if apperror.StatusCode(err) >= 500 {
			log.Printf("Login error: %v", err)
		}
		utils.Fail(c, err)
		return
	}

	utils.Success(c, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}
