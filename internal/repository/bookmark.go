package repository

import (
	"context"

	"barky/internal/model"
)

// BookmarkRepository extends Repository with the mutations the web API needs.
type BookmarkRepository interface {
	Repository

	// Update overwrites title, url and notes of the row matching b.ID.
	// It returns nil when no such row exists; callers that care must Get first.
	Update(ctx context.Context, b *model.Bookmark) error

	// Delete removes a bookmark by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}
