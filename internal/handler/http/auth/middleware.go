// Package auth holds the access guards layered in front of privileged routes
// and the /jwt endpoint that issues session tokens.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"daily-news/internal/handler/http/respond"
	"daily-news/internal/observability/logging"
	authservice "daily-news/internal/service/auth"
)

// CookieName is the session cookie set by POST /jwt?session=cookie.
const CookieName = "token"

const (
	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

// TokenVerifier checks a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*authservice.Claims, error)
}

// AdminChecker reports whether the user with the given email is an administrator.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// ClaimsFromContext returns the claims stored by RequireAuthenticated.
func ClaimsFromContext(ctx context.Context) (*authservice.Claims, bool) {
	c, ok := ctx.Value(ctxClaims).(*authservice.Claims)
	return c, ok && c != nil
}

// WithClaims stores verified claims in ctx.
func WithClaims(ctx context.Context, c *authservice.Claims) context.Context {
	return context.WithValue(ctx, ctxClaims, c)
}

// RequireAuthenticated verifies the bearer token from the Authorization header,
// falling back to the session cookie, and answers 401 when neither verifies.
func RequireAuthenticated(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifier.Verify(credential(r))
			if err != nil {
				RecordAuthRequest("authenticated", "failure")
				logging.FromContext(r.Context()).Info("authentication rejected",
					slog.String("path", r.URL.Path),
					slog.String("reason", err.Error()))
				respond.Message(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			RecordAuthRequest("authenticated", "success")
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin must run after RequireAuthenticated. It answers 403 unless the
// claimed email belongs to a stored user whose role is admin.
func RequireAdmin(checker AdminChecker, advisor respond.RetryAdvisor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				RecordAuthRequest("admin", "failure")
				respond.Message(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			start := time.Now()
			admin, err := checker.IsAdmin(r.Context(), claims.Email)
			RecordAdminCheckDuration(time.Since(start).Seconds())
			if err != nil {
				RecordAuthRequest("admin", "error")
				respond.StoreFailure(w, err, advisor)
				return
			}
			if !admin {
				RecordAuthRequest("admin", "failure")
				RecordForbiddenAttempt("admin", r.Method)
				logging.FromContext(r.Context()).Warn("admin access denied",
					slog.String("path", r.URL.Path),
					slog.String("email", claims.Email))
				respond.Message(w, http.StatusForbidden, msgForbidden)
				return
			}
			RecordAuthRequest("admin", "success")
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelf must run after RequireAuthenticated. It answers 403 when the
// path value named param is not exactly the authenticated email. Emails are
// compared byte for byte, as the user store keys them.
func RequireSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				RecordAuthRequest("self", "failure")
				respond.Message(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			if r.PathValue(param) != claims.Email {
				RecordAuthRequest("self", "failure")
				RecordForbiddenAttempt("self", r.Method)
				respond.Message(w, http.StatusForbidden, msgForbidden)
				return
			}
			RecordAuthRequest("self", "success")
			next.ServeHTTP(w, r)
		})
	}
}

// credential returns the bearer token, or the session cookie value when no
// Authorization header is present.
func credential(r *http.Request) string {
	const prefix = "Bearer "
	if h := r.Header.Get("Authorization"); h != "" {
		if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
			return strings.TrimSpace(h[len(prefix):])
		}
		return ""
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

