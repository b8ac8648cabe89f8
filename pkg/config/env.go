// Package config provides typed environment variable readers shared by the
// service configuration and the store connection helpers.
//
// Every reader returns its default when the variable is unset or empty. Values
// that do not parse are logged with slog and also fall back to the default, so
// a typo never stops the process; semantic checks belong to the caller.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// Example:
//
//	uri := GetEnvString("MONGODB_URI", "mongodb://localhost:27017")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable as an integer.
//
// Example:
//
//	limit := GetEnvInt("TRENDING_LIMIT", 6)
func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		warnInvalid(key, raw, "integer", strconv.Itoa(defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvFloat returns the value of an environment variable as a float64.
func GetEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		warnInvalid(key, raw, "float", strconv.FormatFloat(defaultValue, 'g', -1, 64))
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of an environment variable as a boolean.
// Accepted values are those of strconv.ParseBool.
func GetEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		warnInvalid(key, raw, "boolean", strconv.FormatBool(defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvDuration returns the value of an environment variable as a time.Duration.
// The value must be parseable by time.ParseDuration (e.g., "1m", "30s", "1h30m").
//
// Example:
//
//	timeout := GetEnvDuration("STORE_TIMEOUT", 5*time.Second)
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		warnInvalid(key, raw, "duration", defaultValue.String())
		return defaultValue
	}
	return value
}

// GetEnvStringList returns a comma-separated list of strings from an environment variable.
// Entries are trimmed and empty entries dropped; an all-empty list yields the default.
//
// Example:
//
//	// CORS_ALLOWED_ORIGINS="https://news.example.com, http://localhost:5173"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", nil)
func GetEnvStringList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}

func warnInvalid(key, value, kind, fallback string) {
	slog.Warn("invalid "+kind+" value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", fallback))
}
