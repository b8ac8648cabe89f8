package respond

import (
	"regexp"
)

var (
	// user:password@ in any DSN, including mongodb+srv:// and postgres:// URIs
	dsnPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

	// compact JWTs (header.payload.signature)
	jwtPattern = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)

	// password=... key/value DSN fragments
	kvPasswordPattern = regexp.MustCompile(`(?i)(password=)[^\s&]+`)
)

// SanitizeError returns the error message with credentials and tokens masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "${1}****")
	msg = jwtPattern.ReplaceAllString(msg, "eyJ****")
	return msg
}
