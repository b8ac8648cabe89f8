package middleware

import (
	"net/http"
	"strings"
)

// Policy is an ordered Content-Security-Policy, one directive per entry.
type Policy [][]string

// Directive returns a copy of p with the directive appended.
func (p Policy) Directive(name string, sources ...string) Policy {
	out := make(Policy, len(p), len(p)+1)
	copy(out, p)
	return append(out, append([]string{name}, sources...))
}

// String renders the header value, e.g. "default-src 'none'; frame-ancestors 'none'".
func (p Policy) String() string {
	parts := make([]string, 0, len(p))
	for _, d := range p {
		parts = append(parts, strings.Join(d, " "))
	}
	return strings.Join(parts, "; ")
}

// APIPolicy forbids everything but same-origin fetches. JSON responses never
// need scripts, styles or frames.
func APIPolicy() Policy {
	return Policy{}.
		Directive("default-src", "'none'").
		Directive("connect-src", "'self'").
		Directive("frame-ancestors", "'none'").
		Directive("base-uri", "'self'").
		Directive("form-action", "'self'")
}

// SwaggerPolicy allows the inline bootstrap and assets the Swagger UI page loads.
func SwaggerPolicy() Policy {
	return Policy{}.
		Directive("default-src", "'self'").
		Directive("script-src", "'self'", "'unsafe-inline'").
		Directive("style-src", "'self'", "'unsafe-inline'").
		Directive("img-src", "'self'", "data:").
		Directive("font-src", "'self'", "data:").
		Directive("connect-src", "'self'").
		Directive("frame-ancestors", "'none'").
		Directive("object-src", "'none'")
}

// SecurityHeadersConfig selects a CSP per path prefix.
type SecurityHeadersConfig struct {
	Default Policy
	// PathPolicies override Default for requests under the given prefix.
	PathPolicies map[string]Policy
	// ReportOnly sends Content-Security-Policy-Report-Only instead of enforcing.
	ReportOnly bool
}

// DefaultSecurityHeadersConfig applies APIPolicy everywhere except /swagger/.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		Default:      APIPolicy(),
		PathPolicies: map[string]Policy{"/swagger/": SwaggerPolicy()},
	}
}

// SecurityHeaders sets CSP, nosniff and referrer headers on every response.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	header := "Content-Security-Policy"
	if cfg.ReportOnly {
		header = "Content-Security-Policy-Report-Only"
	}
	defaultValue := cfg.Default.String()
	overrides := make(map[string]string, len(cfg.PathPolicies))
	for prefix, p := range cfg.PathPolicies {
		overrides[prefix] = p.String()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := defaultValue
			longest := 0
			for prefix, v := range overrides {
				if len(prefix) > longest && strings.HasPrefix(r.URL.Path, prefix) {
					value, longest = v, len(prefix)
				}
			}

			h := w.Header()
			if value != "" {
				h.Set(header, value)
			}
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "no-referrer")
			next.ServeHTTP(w, r)
		})
	}
}
