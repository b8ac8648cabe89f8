package auth

import (
	"errors"
	"fmt"
	"strings"
)

// MinSecretLength is the minimum accepted length of the signing secret.
const MinSecretLength = 32

// weakSecrets lists values and prefixes that must never sign tokens.
var weakSecrets = []string{
	"secret",
	"password",
	"changeme",
	"change-me",
	"default",
	"jwt-secret",
	"your-secret",
	"test",
	"admin",
	"123456",
	"qwerty",
}

// ValidateSecret checks the signing secret at startup.
// The error message never includes the secret itself.
func ValidateSecret(secret string) error {
	if secret == "" {
		return errors.New("jwt secret validation failed: JWT_SECRET must not be empty")
	}
	if len(secret) < MinSecretLength {
		return fmt.Errorf("jwt secret validation failed: JWT_SECRET must be at least %d characters (current length: %d)", MinSecretLength, len(secret))
	}
	if isRepeatedChar(secret) {
		return errors.New("jwt secret validation failed: JWT_SECRET must not repeat a single character")
	}

	lower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		// catches padded variants like "secretsecretsecretsecretsecret12"
		if strings.HasPrefix(lower, weak) && strings.Count(lower, weak)*len(weak) >= len(lower)/2 {
			return errors.New("jwt secret validation failed: JWT_SECRET must not be based on a common weak value")
		}
	}
	return nil
}

func isRepeatedChar(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
