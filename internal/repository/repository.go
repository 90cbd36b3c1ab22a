// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"barky/internal/model"
)

// Repository is the storage-agnostic bookmark contract.
type Repository interface {
	// Add persists a new bookmark and writes the storage-assigned ID back onto b.
	Add(ctx context.Context, b *model.Bookmark) error

	// Get returns the bookmark with the given ID, or nil with a nil error when
	// no row matches. Absence is not an error.
	Get(ctx context.Context, id int64) (*model.Bookmark, error)

	// List returns every bookmark in insertion order.
	List(ctx context.Context) ([]model.Bookmark, error)
}
