// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"daily-news/internal/resilience/circuitbreaker"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Message writes {"message": msg} with the given status code.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"message": msg})
}

// safeFragments mark error messages that describe the caller's input and can be returned as-is.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too long",
	"too short",
}

// SafeError sanitizes error messages before returning them to users.
// 5xx errors are logged with secrets masked and answered with a generic message;
// validation style errors are returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	if code < 500 {
		lowerMsg := strings.ToLower(msg)
		for _, safe := range safeFragments {
			if strings.Contains(lowerMsg, safe) {
				isSafe = true
				break
			}
		}
	}

	if isSafe {
		Message(w, code, msg)
		return
	}

	slog.Default().Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	if code >= 500 {
		Message(w, code, "internal server error")
		return
	}
	Message(w, code, strings.ToLower(http.StatusText(code)))
}

// Unavailable answers 503 for a store that timed out or whose circuit is open.
// retryAfter is rounded up to whole seconds; zero omits the header.
func Unavailable(w http.ResponseWriter, retryAfter time.Duration, err error) {
	if retryAfter > 0 {
		secs := int(math.Ceil(retryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	slog.Default().Warn("store unavailable",
		slog.String("error", SanitizeError(err)),
		slog.Duration("retry_after", retryAfter))
	Message(w, http.StatusServiceUnavailable, "service unavailable")
}

// RetryAdvisor suggests how long a client should wait before retrying.
type RetryAdvisor interface {
	RetryAfter() time.Duration
}

// StoreFailure answers a failed store call that no handler-specific mapping
// claimed: 503 when the store is unavailable, 500 otherwise.
func StoreFailure(w http.ResponseWriter, err error, advisor RetryAdvisor) {
	if errors.Is(err, circuitbreaker.ErrStoreUnavailable) {
		var wait time.Duration
		if advisor != nil {
			wait = advisor.RetryAfter()
		}
		Unavailable(w, wait, err)
		return
	}
	SafeError(w, http.StatusInternalServerError, err)
}
