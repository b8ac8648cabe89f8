package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"daily-news/internal/handler/http/respond"

	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long an idle client bucket is kept before eviction.
const DefaultIdleTTL = 10 * time.Minute

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained refill rate.
	RequestsPerSecond float64
	// Burst is the bucket size, i.e. requests allowed back to back.
	Burst   int
	IdleTTL time.Duration
	// Scope labels metrics and logs, e.g. "token".
	Scope string
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one golang.org/x/time/rate token bucket per client IP.
type IPRateLimiter struct {
	cfg       RateLimitConfig
	extractor IPExtractor
	now       func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewIPRateLimiter builds a limiter; a nil extractor uses RemoteAddrExtractor.
func NewIPRateLimiter(cfg RateLimitConfig, extractor IPExtractor) *IPRateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.Scope == "" {
		cfg.Scope = "ip"
	}
	if extractor == nil {
		extractor = RemoteAddrExtractor{}
	}
	return &IPRateLimiter{
		cfg:       cfg,
		extractor: extractor,
		now:       time.Now,
		visitors:  make(map[string]*visitor),
	}
}

// Allow consumes a token for key. When the bucket is empty it reports how
// long the client has to wait; no token is consumed in that case.
func (l *IPRateLimiter) Allow(key string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	res := v.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Second
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	res.CancelAt(now)
	return false, delay
}

// Middleware answers 429 with Retry-After once a client exhausts its bucket.
// Requests whose address cannot be resolved are let through.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := l.extractor.ExtractIP(r)
		if err != nil {
			slog.Warn("rate limit: cannot resolve client address",
				slog.String("remote_addr", r.RemoteAddr),
				slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}

		allowed, wait := l.Allow(ip)
		if !allowed {
			rateLimitDecisions.WithLabelValues(l.cfg.Scope, "denied").Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			respond.Message(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		rateLimitDecisions.WithLabelValues(l.cfg.Scope, "allowed").Inc()
		next.ServeHTTP(w, r)
	})
}

// Cleanup evicts buckets idle for longer than IdleTTL and returns how many were removed.
func (l *IPRateLimiter) Cleanup() int {
	cutoff := l.now().Add(-l.cfg.IdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
			removed++
		}
	}
	rateLimitActiveKeys.WithLabelValues(l.cfg.Scope).Set(float64(len(l.visitors)))
	return removed
}

// Len returns the number of tracked clients.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (l *IPRateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := l.Cleanup(); n > 0 {
					slog.Debug("rate limit: evicted idle clients",
						slog.String("scope", l.cfg.Scope),
						slog.Int("evicted", n))
				}
			}
		}
	}()
}
