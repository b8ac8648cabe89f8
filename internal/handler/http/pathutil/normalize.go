// Package pathutil normalizes request paths into low-cardinality metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const (
	objectID = `[0-9a-fA-F]{24}`
	email    = `[^/@\s]+@[^/@\s]+`
)

// pathPatterns are evaluated in order; more specific routes come first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/article/` + objectID + `/visit$`), Template: "/article/:id/visit"},
	{Pattern: regexp.MustCompile(`^/articles/` + objectID + `$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/articles/[^/]+$`), Template: "/articles/:invalid"},

	{Pattern: regexp.MustCompile(`^/users/admin/` + objectID + `$`), Template: "/users/admin/:id"},
	{Pattern: regexp.MustCompile(`^/users/admin/` + email + `$`), Template: "/users/admin/:email"},
	{Pattern: regexp.MustCompile(`^/users/membership/[^/]+$`), Template: "/users/membership/:email"},
	{Pattern: regexp.MustCompile(`^/users/` + objectID + `$`), Template: "/users/:id"},
	{Pattern: regexp.MustCompile(`^/users/` + email + `$`), Template: "/users/:email"},
	{Pattern: regexp.MustCompile(`^/updatesubscription/[^/]+$`), Template: "/updatesubscription/:email"},
}

// NormalizePath converts paths carrying ids or emails into templates so that
// metrics labels stay bounded.
//
//	NormalizePath("/articles/65a1f0c2e4b0a1b2c3d4e5f6")  // "/articles/:id"
//	NormalizePath("/users/admin/a@x.com")                // "/users/admin/:email"
//	NormalizePath("/searcharticles?search=x")            // "/searcharticles"
//	NormalizePath("/health")                             // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
