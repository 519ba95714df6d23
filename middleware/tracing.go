package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"main/utils"
)

// RequestTracingMiddleware tags every request with an ID and writes one
// log line per request including the parsed client user agent.
func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		browser, clientOS, device := utils.ParseUserAgent(c.Request.UserAgent())
		log.Printf("[%s] %s %s -> %d (%s) %s/%s/%s",
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			browser, clientOS, device,
		)
	}
}
