package repository

import (
	"context"

	"barky/internal/model"
)

// SnippetRepository defines data access for snippet metadata using SQL queries only.
type SnippetRepository interface {
	// Create inserts a snippet row and returns it with ID and CreatedAt set by the database.
	Create(ctx context.Context, s *model.Snippet) (*model.Snippet, error)

	// FindByID returns sql.ErrNoRows when the snippet does not exist.
	FindByID(ctx context.Context, id int64) (*model.Snippet, error)

	List(ctx context.Context) ([]model.Snippet, error)

	// Delete removes a snippet by ID. Missing rows are not an error.
	Delete(ctx context.Context, id int64) error
}
