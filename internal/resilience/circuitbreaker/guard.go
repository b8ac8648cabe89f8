package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/codes"

	"daily-news/internal/observability/metrics"
	"daily-news/internal/observability/tracing"
)

// ErrStoreUnavailable means the store did not answer in time or the circuit is open.
// It is retryable from the caller's point of view.
var ErrStoreUnavailable = errors.New("store unavailable")

// DefaultStoreTimeout bounds a single store call when no timeout is configured.
const DefaultStoreTimeout = 5 * time.Second

// Guard runs a store call under resilience policies.
type Guard interface {
	Do(ctx context.Context, op string, fn func(ctx context.Context) error) error
}

// StoreGuard applies a per-call timeout and a circuit breaker to store calls.
// A nil *StoreGuard runs calls directly.
type StoreGuard struct {
	cb      *CircuitBreaker
	timeout time.Duration
}

// NewStoreGuard builds a guard. Errors matching any of benign (for example a
// duplicate-key rejection) are returned to the caller but do not trip the breaker.
func NewStoreGuard(cfg Config, timeout time.Duration, benign ...error) *StoreGuard {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	if cfg.IsSuccessful == nil {
		cfg.IsSuccessful = func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			for _, b := range benign {
				if errors.Is(err, b) {
					return true
				}
			}
			return false
		}
	}
	return &StoreGuard{cb: New(cfg), timeout: timeout}
}

// Do runs fn with a derived deadline through the breaker.
// A deadline hit by this guard (not by the caller's own context) and an open
// breaker are both reported as ErrStoreUnavailable.
func (g *StoreGuard) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if g == nil {
		return fn(ctx)
	}

	ctx, span := tracing.StartSpan(ctx, "store."+op)
	defer span.End()

	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	_, err := g.cb.Execute(func() (interface{}, error) {
		return nil, fn(callCtx)
	})
	metrics.RecordStoreCall(op, time.Since(start), err)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordStoreUnavailable(op, "circuit_open")
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		metrics.RecordStoreUnavailable(op, "timeout")
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
	return err
}

// RetryAfter suggests how long clients should wait after ErrStoreUnavailable.
func (g *StoreGuard) RetryAfter() time.Duration {
	if g == nil {
		return 0
	}
	if g.cb.IsOpen() {
		return g.cb.OpenTimeout()
	}
	return g.timeout
}

// State exposes the breaker state for health reporting.
func (g *StoreGuard) State() gobreaker.State {
	if g == nil {
		return gobreaker.StateClosed
	}
	return g.cb.State()
}

// Call runs fn through g and returns its value. A nil g calls fn directly.
func Call[T any](ctx context.Context, g Guard, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	if g == nil {
		return fn(ctx)
	}
	err := g.Do(ctx, op, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}
