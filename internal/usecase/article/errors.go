// Package article provides use cases for managing article entities.
// It implements filtering, pagination, visit counting and moderation on top of
// the article repository port.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is not a 24 character hex id.
	// It is returned before any store call is made.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrInvalidPagination indicates a non-positive page or page size.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)
