// Package auth issues and verifies the signed session tokens that carry a
// caller's claimed identity. Tokens are HS256 JWTs and are never persisted.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated is returned for a missing, malformed, expired or badly signed token.
var ErrUnauthenticated = errors.New("unauthenticated")

const (
	// DefaultAccessTokenTTL is the lifetime of bearer tokens returned in the /jwt body.
	DefaultAccessTokenTTL = time.Hour
	// DefaultSessionTokenTTL is the lifetime of tokens stored in the session cookie.
	DefaultSessionTokenTTL = 2 * time.Hour
)

// Claims is the token payload. Email identifies the caller and is mirrored in the subject.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens with a shared secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService validates secret and returns a service that signs with it.
func NewTokenService(secret string) (*TokenService, error) {
	if err := ValidateSecret(secret); err != nil {
		return nil, err
	}
	return &TokenService{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs claims with an expiry of ttl from now.
// The subject is always set to the email so that other JWT consumers can identify the caller.
func (s *TokenService) Issue(claims Claims, ttl time.Duration) (string, error) {
	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return "", errors.New("issue token: email claim is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("issue token: ttl must be positive, got %s", ttl)
	}

	now := s.now()
	claims.Email = email
	claims.Subject = email
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Verify parses token and returns its claims. Only HS256 is accepted and an
// expiry is required; every failure is reported as ErrUnauthenticated.
func (s *TokenService) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrUnauthenticated)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if !parsed.Valid || claims.Email == "" {
		return nil, fmt.Errorf("%w: invalid claims", ErrUnauthenticated)
	}
	return claims, nil
}
