package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config captures the tunable parameters for the server process. Values come
// from environment variables with defaults that work for a local run.
type Config struct {
	Port    string
	DataDir string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	AdminEmail    string
	AdminPassword string

	OperatorEmail string
	OperatorPhone string

	ChatReplyDelay time.Duration

	LogRetention int

	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DataDir:         getEnv("DATA_DIR", "data"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL: getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		OperatorEmail:   os.Getenv("OPERATOR_EMAIL"),
		OperatorPhone:   os.Getenv("OPERATOR_PHONE"),
		ChatReplyDelay:  getDuration("CHAT_REPLY_DELAY", 600*time.Millisecond),
		LogRetention:    getInt("LOG_RETENTION", 5000),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
