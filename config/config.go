package config

import (
	"errors"
	"os"
	"time"

	"main/utils"
)

type MongoConfig struct {
	URI             string
	Database        string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

type RedisConfig struct {
	// URL is optional; when empty the auth rate limiter is not installed.
	URL            string
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

type Config struct {
	Port      string
	JWTSecret string
	Mongo     MongoConfig
	Redis     RedisConfig
}

// Load builds the configuration from the environment. MONGO_URI and
// JWT_SECRET are required; startup fails fast without them.
func Load() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return &Config{
		Port:      utils.GetEnvAsString("PORT", "8080"),
		JWTSecret: jwtSecret,
		Mongo: MongoConfig{
			URI:             mongoURI,
			Database:        utils.GetEnvAsString("MONGO_DB", "notes-app"),
			MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
			MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		},
		Redis: RedisConfig{
			URL:            utils.GetEnvAsString("REDIS_URL", ""),
			AuthRateLimit:  utils.GetEnvAsInt("AUTH_RATE_LIMIT", 20),
			AuthRateWindow: utils.GetEnvAsDuration("AUTH_RATE_WINDOW", time.Minute),
		},
	}, nil
}
