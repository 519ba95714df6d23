package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"main/apperror"
	"main/services"
	"main/utils"
)

// AuthMiddleware resolves the caller's identity from the bearer token,
// once per request, before any handler or store is touched. Handlers read
// the identity from the context.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.TrackAuthAttempt("failure", "token")
			utils.Fail(c, apperror.ErrMissingToken)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "token")
			utils.Fail(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
