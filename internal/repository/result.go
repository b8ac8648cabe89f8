// Package repository declares the store ports used by the use cases
// together with the filter and result types shared by every adapter.
package repository

import "errors"

// ErrDuplicateKey is returned when a write violates a uniqueness constraint.
var ErrDuplicateKey = errors.New("duplicate key")

// UpdateResult reports how many documents an update matched and changed.
// UpsertedID is set when an upsert inserted a new document.
type UpdateResult struct {
	Matched    int64
	Modified   int64
	UpsertedID string
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	Deleted int64
}
