package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "k3Jx9vQ2mL7pR4tW8yZ1bN6cF0hD5gS2"

func newTestService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret)
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := newTestService(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	token, err := svc.Issue(Claims{Email: " a@x.com "}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, fixed.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
}

func TestTokenService_TTLIsACallSiteParameter(t *testing.T) {
	svc := newTestService(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	short, err := svc.Issue(Claims{Email: "a@x.com"}, DefaultAccessTokenTTL)
	require.NoError(t, err)
	long, err := svc.Issue(Claims{Email: "a@x.com"}, DefaultSessionTokenTTL)
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(90 * time.Minute) }

	_, err = svc.Verify(short)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.Verify(long)
	assert.NoError(t, err)
}

func TestTokenService_IssueRejectsBadInput(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Issue(Claims{}, time.Hour)
	assert.Error(t, err)
	_, err = svc.Issue(Claims{Email: "a@x.com"}, 0)
	assert.Error(t, err)
}

func TestTokenService_VerifyFailures(t *testing.T) {
	svc := newTestService(t)
	other, err := NewTokenService(strings.Repeat("ab", 8) + "Zq9!Zq9!Zq9!Zq9!")
	require.NoError(t, err)

	valid, err := svc.Issue(Claims{Email: "a@x.com"}, time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(Claims{Email: "a@x.com"}, time.Hour)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "a@x.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Email:            "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "a@x.com"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"missing":         "",
		"malformed":       "not.a.jwt",
		"tampered":        valid[:len(valid)-2] + "xx",
		"foreign secret":  foreign,
		"alg none":        noneAlg,
		"wrong algorithm": hs512,
		"no expiry":       noExpiry,
		"no email":        noEmail,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.True(t, errors.Is(err, ErrUnauthenticated), "got %v", err)
		})
	}
}

func TestValidateSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{"strong", testSecret, false},
		{"empty", "", true},
		{"too short", "abc123", true},
		{"repeated", strings.Repeat("a", 40), true},
		{"weak padded", strings.Repeat("secret", 6), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSecret(tt.secret)
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
			if err != nil && tt.secret != "" {
				assert.NotContains(t, err.Error(), tt.secret)
			}
		})
	}
}
