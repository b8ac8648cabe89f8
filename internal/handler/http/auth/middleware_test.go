package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"daily-news/internal/resilience/circuitbreaker"
	authservice "daily-news/internal/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "k3Jx9vQ2mL7pR4tW8yZ1bN6cF0hD5gS2"

func newTokens(t *testing.T) *authservice.TokenService {
	t.Helper()
	svc, err := authservice.NewTokenService(testSecret)
	require.NoError(t, err)
	return svc
}

func issue(t *testing.T, svc *authservice.TokenService, email string) string {
	t.Helper()
	tok, err := svc.Issue(authservice.Claims{Email: email}, time.Hour)
	require.NoError(t, err)
	return tok
}

type adminStub struct {
	admins map[string]bool
	err    error
	calls  int
}

func (s *adminStub) IsAdmin(_ context.Context, email string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.admins[email], nil
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	_, _ = w.Write([]byte(claims.Email))
})

func TestRequireAuthenticated(t *testing.T) {
	tokens := newTokens(t)
	other, err := authservice.NewTokenService("Zq8wX2vB5nM1kL7jH4gF9dS3aP6oI0uY")
	require.NoError(t, err)

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		wantCode int
		wantBody string
	}{
		{
			name:     "bearer token",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+issue(t, tokens, "a@x.com")) },
			wantCode: http.StatusOK,
			wantBody: "a@x.com",
		},
		{
			name:     "lowercase scheme",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "bearer "+issue(t, tokens, "a@x.com")) },
			wantCode: http.StatusOK,
			wantBody: "a@x.com",
		},
		{
			name: "session cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: issue(t, tokens, "c@x.com")})
			},
			wantCode: http.StatusOK,
			wantBody: "c@x.com",
		},
		{
			name:     "missing credential",
			setup:    func(*http.Request) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong scheme",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Basic YTpi") },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "signed with another secret",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+issue(t, other, "a@x.com")) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "garbage token",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer not.a.jwt") },
			wantCode: http.StatusUnauthorized,
		},
	}

	h := RequireAuthenticated(tokens)(okHandler)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/adminusers", nil)
			tt.setup(req)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			} else {
				assert.JSONEq(t, `{"message":"unauthorized access"}`, rr.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := newTokens(t)

	tests := []struct {
		name     string
		email    string
		stub     *adminStub
		wantCode int
	}{
		{name: "admin passes", email: "boss@x.com", stub: &adminStub{admins: map[string]bool{"boss@x.com": true}}, wantCode: http.StatusOK},
		{name: "non admin is forbidden", email: "reader@x.com", stub: &adminStub{admins: map[string]bool{"boss@x.com": true}}, wantCode: http.StatusForbidden},
		{name: "unknown user is forbidden", email: "ghost@x.com", stub: &adminStub{}, wantCode: http.StatusForbidden},
		{name: "store failure is internal", email: "boss@x.com", stub: &adminStub{err: errors.New("socket closed")}, wantCode: http.StatusInternalServerError},
		{name: "store unavailable", email: "boss@x.com", stub: &adminStub{err: fmt.Errorf("user.get_by_email: %w", circuitbreaker.ErrStoreUnavailable)}, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RequireAuthenticated(tokens)(RequireAdmin(tt.stub, nil)(okHandler))
			req := httptest.NewRequest(http.MethodGet, "/adminusers", nil)
			req.Header.Set("Authorization", "Bearer "+issue(t, tokens, tt.email))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, 1, tt.stub.calls)
			if tt.wantCode == http.StatusForbidden {
				assert.JSONEq(t, `{"message":"forbidden access"}`, rr.Body.String())
			}
		})
	}
}

func TestRequireAdmin_WithoutClaimsIsUnauthorized(t *testing.T) {
	stub := &adminStub{}
	rr := httptest.NewRecorder()
	RequireAdmin(stub, nil)(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/adminusers", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Zero(t, stub.calls)
}

func TestRequireSelf(t *testing.T) {
	tokens := newTokens(t)
	mux := http.NewServeMux()
	mux.Handle("GET /users/admin/{email}", RequireAuthenticated(tokens)(RequireSelf("email")(okHandler)))

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "own email", path: "/users/admin/a@x.com", wantCode: http.StatusOK},
		{name: "different case is another user", path: "/users/admin/A@X.com", wantCode: http.StatusForbidden},
		{name: "someone else", path: "/users/admin/b@x.com", wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+issue(t, tokens, "a@x.com"))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)
}
