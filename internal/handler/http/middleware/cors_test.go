package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsHandler(origins ...string) http.Handler {
	return CORS(DefaultCORSConfig(origins))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name            string
		origins         []string
		method          string
		origin          string
		preflight       bool
		wantCode        int
		wantAllowOrigin string
		wantCredentials string
	}{
		{
			name:     "no origin header is untouched",
			origins:  []string{"https://news.example"},
			method:   http.MethodGet,
			wantCode: http.StatusOK,
		},
		{
			name:            "allowed origin is echoed with credentials",
			origins:         []string{"https://news.example"},
			method:          http.MethodGet,
			origin:          "https://news.example",
			wantCode:        http.StatusOK,
			wantAllowOrigin: "https://news.example",
			wantCredentials: "true",
		},
		{
			name:     "unknown origin gets no headers",
			origins:  []string{"https://news.example"},
			method:   http.MethodGet,
			origin:   "https://evil.example",
			wantCode: http.StatusOK,
		},
		{
			name:            "wildcard answers star without credentials",
			origins:         []string{"*"},
			method:          http.MethodGet,
			origin:          "https://anyone.example",
			wantCode:        http.StatusOK,
			wantAllowOrigin: "*",
		},
		{
			name:            "preflight short-circuits with 204",
			origins:         []string{"https://news.example"},
			method:          http.MethodOptions,
			origin:          "https://news.example",
			preflight:       true,
			wantCode:        http.StatusNoContent,
			wantAllowOrigin: "https://news.example",
			wantCredentials: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/articles", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
			}
			rr := httptest.NewRecorder()
			corsHandler(tt.origins...).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantAllowOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, rr.Header().Get("Access-Control-Allow-Credentials"))
			if tt.preflight {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "PATCH")
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
				assert.Equal(t, "86400", rr.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}
