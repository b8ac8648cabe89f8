// Package http provides the HTTP surface of the news API: the shared middleware
// chain, request metrics, health checks and the banner route. Resource handlers
// live in the article, user, publisher, testimonial and auth subpackages.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"daily-news/internal/handler/http/respond"

	"github.com/sony/gobreaker"
)

// Banner is the plain-text body served on GET /.
const Banner = "Your daily news server is running"

// Pinger checks that the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger (e.g. (*sql.DB).PingContext).
type PingFunc func(ctx context.Context) error

// Ping calls f(ctx).
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// BreakerState reports the state of the store circuit breaker.
type BreakerState interface {
	State() gobreaker.State
}

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports store connectivity and breaker state.
// An open breaker is reported as degraded; only a failed ping is unhealthy.
type HealthHandler struct {
	Store   Pinger
	Driver  string
	Breaker BreakerState
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	healthy := true

	store := h.checkStore(ctx)
	checks["store"] = store
	if store.Status == "unhealthy" {
		healthy = false
	}
	if h.Breaker != nil {
		checks["circuit_breaker"] = checkBreaker(h.Breaker.State())
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) CheckStatus {
	if h.Store == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	details := map[string]any{"driver": h.Driver}
	start := time.Now()
	if err := h.Store.Ping(ctx); err != nil {
		slog.Default().Warn("health: store ping failed",
			slog.String("error", respond.SanitizeError(err)))
		return CheckStatus{Status: "unhealthy", Message: "ping failed", Details: details}
	}
	details["ping_ms"] = time.Since(start).Milliseconds()
	return CheckStatus{Status: "healthy", Details: details}
}

func checkBreaker(state gobreaker.State) CheckStatus {
	details := map[string]any{"state": state.String()}
	if state == gobreaker.StateClosed {
		return CheckStatus{Status: "healthy", Details: details}
	}
	return CheckStatus{Status: "degraded", Message: "store circuit is " + state.String(), Details: details}
}

// ReadyHandler answers the readiness check: 200 once the store answers a ping.
type ReadyHandler struct {
	Store Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Store == nil {
		http.Error(w, "store not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.Store.Ping(ctx); err != nil {
		http.Error(w, "store not ready", http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler answers the liveness check.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "alive")
}

// BannerHandler serves the root banner.
func BannerHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, Banner)
	})
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Debug("write response failed", slog.Any("error", err))
	}
}
