package postgres

import (
	"context"
	"database/sql"

	"barky/internal/model"
	"barky/internal/repository"
)

// SnippetPostgres is a PostgreSQL implementation of repository.SnippetRepository.
type SnippetPostgres struct {
	db *sql.DB
}

// NewSnippetPostgres creates a new SnippetPostgres repository.
func NewSnippetPostgres(db *sql.DB) *SnippetPostgres {
	return &SnippetPostgres{db: db}
}

var _ repository.SnippetRepository = (*SnippetPostgres)(nil)

// Create inserts a new snippet row and returns the stored record.
func (r *SnippetPostgres) Create(ctx context.Context, s *model.Snippet) (*model.Snippet, error) {
	const q = `
		INSERT INTO snippets (title, language, storage_path, size)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, language, storage_path, size, created_at
	`
	row := r.db.QueryRowContext(ctx, q, s.Title, s.Language, s.StoragePath, s.Size)
	var out model.Snippet
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&out.Language,
		&out.StoragePath,
		&out.Size,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single snippet by its ID.
func (r *SnippetPostgres) FindByID(ctx context.Context, id int64) (*model.Snippet, error) {
	const q = `
		SELECT id, title, language, storage_path, size, created_at
		FROM snippets
		WHERE id = $1
	`
	var s model.Snippet
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID,
		&s.Title,
		&s.Language,
		&s.StoragePath,
		&s.Size,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns snippet metadata, oldest first.
func (r *SnippetPostgres) List(ctx context.Context) ([]model.Snippet, error) {
	const q = `
		SELECT id, title, language, storage_path, size, created_at
		FROM snippets
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Snippet, 0)
	for rows.Next() {
		var s model.Snippet
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Language,
			&s.StoragePath,
			&s.Size,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a snippet by ID. It does not return an error if the row does not exist.
func (r *SnippetPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM snippets WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
