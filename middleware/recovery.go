package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/utils"
)

// RecoveryMiddleware converts panics into a generic 500 response.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("panic", "handler")
				utils.InternalError(c, "Server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
