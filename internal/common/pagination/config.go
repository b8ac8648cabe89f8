// Package pagination provides offset pagination for list endpoints: query parsing,
// offset arithmetic, page results and request metrics.
package pagination

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page when limit is missing
	MaxLimit     int // Maximum allowed items per page
}

// DefaultConfig returns the configuration used for article pages: page=1, limit=10, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// UsersConfig returns the configuration used for the admin user listing,
// which shows five users per page unless the client asks otherwise.
func UsersConfig() Config {
	cfg := DefaultConfig()
	cfg.DefaultLimit = 5
	return cfg
}

// WithDefaultLimit returns a copy of c with a different default page size.
func (c Config) WithDefaultLimit(limit int) Config {
	if limit > 0 {
		c.DefaultLimit = limit
	}
	return c
}
