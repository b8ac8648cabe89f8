// Package user provides use cases for registering users and managing their
// profile, membership and role.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that no user matches the id or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID indicates that the provided user ID is not a 24 character hex id.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidPagination indicates a non-positive page or page size.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)
