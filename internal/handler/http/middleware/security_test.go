package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_String(t *testing.T) {
	p := Policy{}.Directive("default-src", "'none'").Directive("img-src", "'self'", "data:")
	assert.Equal(t, "default-src 'none'; img-src 'self' data:", p.String())
	assert.Equal(t, "", Policy{}.String())
}

func TestPolicy_DirectiveDoesNotAlias(t *testing.T) {
	base := Policy{}.Directive("default-src", "'none'")
	a := base.Directive("img-src", "'self'")
	b := base.Directive("font-src", "'self'")
	assert.Equal(t, "default-src 'none'; img-src 'self'", a.String())
	assert.Equal(t, "default-src 'none'; font-src 'self'", b.String())
}

func TestSecurityHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name       string
		cfg        SecurityHeadersConfig
		path       string
		header     string
		wantPolicy string
	}{
		{"api route", DefaultSecurityHeadersConfig(), "/articles", "Content-Security-Policy", APIPolicy().String()},
		{"swagger route", DefaultSecurityHeadersConfig(), "/swagger/index.html", "Content-Security-Policy", SwaggerPolicy().String()},
		{"report only", SecurityHeadersConfig{Default: APIPolicy(), ReportOnly: true}, "/users", "Content-Security-Policy-Report-Only", APIPolicy().String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SecurityHeaders(tt.cfg)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantPolicy, rec.Header().Get(tt.header))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
		})
	}
}
