package middleware

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"main/utils"
)

// NewRedisClient connects to Redis from a URL and verifies the connection.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// RateLimitMiddleware is a fixed-window limiter keyed by client IP and
// route. A Redis failure fails open: auth still works without Redis, the
// limiter is only a shield on top.
func RateLimitMiddleware(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), c.FullPath())

		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("rate limiter unavailable: %v", err)
			utils.TrackError("ratelimit", "redis_unavailable")
			c.Next()
			return
		}

		if count == 1 {
			client.Expire(c.Request.Context(), key, window)
		}

		if count > int64(limit) {
			utils.TrackError("ratelimit", "limit_exceeded")
			utils.TooManyRequests(c, "Too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
