package app

import (
	"os"
	"strconv"
	"time"

	"github.com/smicho01/todos-rest-api/pkg/jwtx"
)

type Config struct {
	Issuer      string        // Optional: issuer claim for tokens (default: todos-rest-api)
	TokenSecret string        // Required: HMAC secret for signing tokens
	TokenTTL    time.Duration // Optional: access token lifetime (default: 1h)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./todos.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("TODO_ISSUER", "todos-rest-api"),
		TokenSecret:         os.Getenv("TODO_TOKEN_SECRET"),
		TokenTTL:            getEnvDurationOrDefault("TODO_TOKEN_TTL", jwtx.DefaultTokenTTL),
		DatabaseFile:        getEnvOrDefault("TODO_DATABASE_FILE", "todos.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
