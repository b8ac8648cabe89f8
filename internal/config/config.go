// Package config loads the API server configuration.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, an optional YAML file named by CONFIG_FILE, and environment
// variables (including those loaded from .env files). The result is validated
// once; the server refuses to start on an invalid configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	envconfig "daily-news/pkg/config"
)

// Supported STORE_DRIVER values.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// minJWTSecretLength is 256 bits for HS256.
const minJWTSecretLength = 32

var weakSecrets = []string{"secret", "password", "test", "admin", "default", "changeme"}

// Config is the complete server configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Auth       AuthConfig       `yaml:"auth"`
	Pagination PaginationConfig `yaml:"pagination"`
	Articles   ArticlesConfig   `yaml:"articles"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
}

type ServerConfig struct {
	Port              int           `yaml:"port"`
	Env               string        `yaml:"env"`
	Version           string        `yaml:"version"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	// TrustedProxies lists CIDRs whose X-Forwarded-For header is believed.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

type StoreConfig struct {
	Driver        string        `yaml:"driver"`
	MongoURI      string        `yaml:"-"`
	MongoDatabase string        `yaml:"mongo_database"`
	DatabaseURL   string        `yaml:"-"`
	Timeout       time.Duration `yaml:"timeout"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"-"`
	AccessTTL  time.Duration `yaml:"access_ttl"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type PaginationConfig struct {
	DefaultLimit      int `yaml:"default_limit"`
	UsersDefaultLimit int `yaml:"users_default_limit"`
	MaxLimit          int `yaml:"max_limit"`
}

type ArticlesConfig struct {
	TrendingLimit int `yaml:"trending_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// RateLimitConfig bounds token issuance per client IP.
type RateLimitConfig struct {
	TokenRPS   float64 `yaml:"token_rps"`
	TokenBurst int     `yaml:"token_burst"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in defaults. Secrets and DSNs have no default.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			Env:               "development",
			Version:           "dev",
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Store: StoreConfig{
			Driver:        DriverMongo,
			MongoDatabase: "newsDB",
			Timeout:       5 * time.Second,
		},
		Auth: AuthConfig{
			AccessTTL:  time.Hour,
			SessionTTL: 2 * time.Hour,
		},
		Pagination: PaginationConfig{
			DefaultLimit:      10,
			UsersDefaultLimit: 5,
			MaxLimit:          100,
		},
		Articles: ArticlesConfig{TrendingLimit: 6},
		CORS:     CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit: RateLimitConfig{
			TokenRPS:   1,
			TokenBurst: 5,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads .env files, CONFIG_FILE and the environment, then validates the result.
func Load() (*Config, error) {
	LoadDotEnv("")

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads .env files from dir. Variables already present in the
// environment win, and among the files the most specific one wins:
// .env.<APP_ENV>.local, .env.local, .env.<APP_ENV>, .env.
// Missing files are skipped.
func LoadDotEnv(dir string) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	for _, name := range []string{".env." + env + ".local", ".env.local", ".env." + env, ".env"} {
		path := dir + name
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}

func (c *Config) loadFile(path string) error {
	// #nosec G304 -- path comes from the operator's CONFIG_FILE, not from requests
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = envconfig.GetEnvInt("PORT", c.Server.Port)
	c.Server.Env = envconfig.GetEnvString("APP_ENV", c.Server.Env)
	c.Server.Version = envconfig.GetEnvString("VERSION", c.Server.Version)
	c.Server.ReadHeaderTimeout = envconfig.GetEnvDuration("READ_HEADER_TIMEOUT", c.Server.ReadHeaderTimeout)
	c.Server.ShutdownTimeout = envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.TrustedProxies = envconfig.GetEnvStringList("TRUSTED_PROXIES", c.Server.TrustedProxies)

	c.Store.Driver = strings.ToLower(envconfig.GetEnvString("STORE_DRIVER", c.Store.Driver))
	c.Store.MongoURI = envconfig.GetEnvString("MONGODB_URI", c.Store.MongoURI)
	c.Store.MongoDatabase = envconfig.GetEnvString("MONGODB_DATABASE", c.Store.MongoDatabase)
	c.Store.DatabaseURL = envconfig.GetEnvString("DATABASE_URL", c.Store.DatabaseURL)
	c.Store.Timeout = envconfig.GetEnvDuration("STORE_TIMEOUT", c.Store.Timeout)

	c.Auth.JWTSecret = envconfig.GetEnvString("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.AccessTTL = envconfig.GetEnvDuration("JWT_ACCESS_TTL", c.Auth.AccessTTL)
	c.Auth.SessionTTL = envconfig.GetEnvDuration("JWT_SESSION_TTL", c.Auth.SessionTTL)

	c.Pagination.DefaultLimit = envconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", c.Pagination.DefaultLimit)
	c.Pagination.UsersDefaultLimit = envconfig.GetEnvInt("PAGINATION_USERS_DEFAULT_LIMIT", c.Pagination.UsersDefaultLimit)
	c.Pagination.MaxLimit = envconfig.GetEnvInt("PAGINATION_MAX_LIMIT", c.Pagination.MaxLimit)
	c.Articles.TrendingLimit = envconfig.GetEnvInt("TRENDING_LIMIT", c.Articles.TrendingLimit)

	c.CORS.AllowedOrigins = envconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	c.RateLimit.TokenRPS = envconfig.GetEnvFloat("TOKEN_RATE_LIMIT_RPS", c.RateLimit.TokenRPS)
	c.RateLimit.TokenBurst = envconfig.GetEnvInt("TOKEN_RATE_LIMIT_BURST", c.RateLimit.TokenBurst)

	c.Log.Level = envconfig.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envconfig.GetEnvString("LOG_FORMAT", c.Log.Format)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if err := validateJWTSecret(c.Auth.JWTSecret); err != nil {
		return err
	}
	if err := envconfig.ValidatePositiveDuration(c.Auth.AccessTTL); err != nil {
		return fmt.Errorf("JWT_ACCESS_TTL: %w", err)
	}
	if err := envconfig.ValidatePositiveDuration(c.Auth.SessionTTL); err != nil {
		return fmt.Errorf("JWT_SESSION_TTL: %w", err)
	}

	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.MongoURI == "" {
			return errors.New("MONGODB_URI is required when STORE_DRIVER=mongo")
		}
		if c.Store.MongoDatabase == "" {
			return errors.New("MONGODB_DATABASE cannot be empty")
		}
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be one of %s, %s, %s; got %q",
			DriverMongo, DriverPostgres, DriverMemory, c.Store.Driver)
	}
	if err := envconfig.ValidateDurationRange(c.Store.Timeout, 100*time.Millisecond, time.Minute); err != nil {
		return fmt.Errorf("STORE_TIMEOUT: %w", err)
	}

	if err := envconfig.ValidateIntRange(c.Server.Port, 1, 65535); err != nil {
		return fmt.Errorf("PORT: %w", err)
	}
	if err := envconfig.ValidatePositiveDuration(c.Server.ReadHeaderTimeout); err != nil {
		return fmt.Errorf("READ_HEADER_TIMEOUT: %w", err)
	}
	if err := envconfig.ValidatePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	if err := envconfig.ValidateIntRange(c.Pagination.MaxLimit, 1, 1000); err != nil {
		return fmt.Errorf("PAGINATION_MAX_LIMIT: %w", err)
	}
	if err := envconfig.ValidateIntRange(c.Pagination.DefaultLimit, 1, c.Pagination.MaxLimit); err != nil {
		return fmt.Errorf("PAGINATION_DEFAULT_LIMIT: %w", err)
	}
	if err := envconfig.ValidateIntRange(c.Pagination.UsersDefaultLimit, 1, c.Pagination.MaxLimit); err != nil {
		return fmt.Errorf("PAGINATION_USERS_DEFAULT_LIMIT: %w", err)
	}
	if c.Articles.TrendingLimit < 1 {
		return errors.New("TRENDING_LIMIT must be positive")
	}

	if c.RateLimit.TokenRPS <= 0 {
		return errors.New("TOKEN_RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimit.TokenBurst < 1 {
		return errors.New("TOKEN_RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Env)
	return env == "production" || env == "prod"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// validateJWTSecret rejects short secrets and padded weak words such as
// "passwordpasswordpassword12345678".
func validateJWTSecret(secret string) error {
	if secret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if len(secret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters (256 bits)", minJWTSecretLength)
	}
	lower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if strings.Trim(lower, weak+"0123456789") == "" {
			return errors.New("JWT_SECRET must not be a common weak value")
		}
	}
	return nil
}
