package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"main/apperror"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success writes the payload as-is with a 200. Success bodies are flat
// objects ({token,user}, {notes}, {note}, {message}) rather than a shared
// envelope.
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: message})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// Fail maps err through the error taxonomy and writes the matching status
// and message.
func Fail(c *gin.Context, err error) {
	appErr := apperror.FromError(err)
	c.JSON(appErr.StatusCode, ErrorResponse{Error: appErr.Message})
}
