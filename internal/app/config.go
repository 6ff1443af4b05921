package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string        // Issuer claim for tokens (default: spendlog)
	TokenSecret   string        // Required: HMAC signing secret
	Algorithm     string        // JWT signing algorithm (HS256, HS384, HS512) (default: HS256)
	TokenTTL      time.Duration // Access token lifetime (default: 30m)
	DatabaseFile  string        // Path to SQLite database file (default: ./spendlog.db)
	SeedDefaults  bool          // Seed default roles, users and modules on startup (default: true)
	Env           string        // Environment (dev, staging, prod) (default: dev)
	LogLevel      string        // Log level (debug, info, warn, error) (default: info)
	LogFormat     string        // Log format (json, text) (default: json)
	Port          int           // HTTP server port (default: 8080)
	ShutdownGrace time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:        getEnvOrDefault("SPENDLOG_ISSUER", "spendlog"),
		TokenSecret:   os.Getenv("SPENDLOG_TOKEN_SECRET"),
		Algorithm:     getEnvOrDefault("SPENDLOG_ALGORITHM", "HS256"),
		TokenTTL:      getEnvDurationOrDefault("SPENDLOG_TOKEN_TTL", 30*time.Minute),
		DatabaseFile:  getEnvOrDefault("SPENDLOG_DATABASE_FILE", "spendlog.db"),
		SeedDefaults:  getEnvBoolOrDefault("SPENDLOG_SEED_DEFAULTS", true),
		Env:           getEnvOrDefault("ENV", "dev"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "json"),
		Port:          getEnvIntOrDefault("PORT", 8080),
		ShutdownGrace: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept duration strings ("30m", "1h") or bare integer minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
