package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	PlatformBaseURL   string // Required: base URL of the platform open API
	PlatformAppID     string // Required: application id issued by the platform
	PlatformAppSecret string // Required: application secret, used as both appkey and signing secret

	SessionSigningKey string        // Required: HMAC key for session tokens
	SessionTTL        time.Duration // Optional: session token lifetime (default: 12h)
	Issuer            string        // Optional: issuer claim for session tokens (default: wpsgate)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./wpsgate.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		PlatformBaseURL:   os.Getenv("WPS_BASE_URL"),
		PlatformAppID:     os.Getenv("WPS_APP_ID"),
		PlatformAppSecret: os.Getenv("WPS_APP_SECRET"),

		SessionSigningKey: os.Getenv("SESSION_SIGNING_KEY"),
		SessionTTL:        getEnvDurationOrDefault("SESSION_TTL", 12*time.Hour),
		Issuer:            getEnvOrDefault("ISSUER", "wpsgate"),

		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "wpsgate.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports missing required settings before anything starts.
func (cfg Config) Validate() error {
	if cfg.PlatformBaseURL == "" {
		return errors.New("WPS_BASE_URL is required")
	}
	if cfg.PlatformAppID == "" {
		return errors.New("WPS_APP_ID is required")
	}
	if cfg.PlatformAppSecret == "" {
		return errors.New("WPS_APP_SECRET is required")
	}
	if cfg.SessionSigningKey == "" {
		return errors.New("SESSION_SIGNING_KEY is required")
	}
	return nil
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
