package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"barky/internal/model"
	"barky/internal/repository"
)

// BookmarkPostgres is a PostgreSQL implementation of repository.BookmarkRepository.
// It uses database/sql with parameterized queries and contains no business logic.
//
// Every bookmark that passes through a successful Add or a found Get is
// remembered in a per-instance seen set keyed by ID, holding the latest
// instance handed out. Nothing in the repository reads it.
type BookmarkPostgres struct {
	db *sql.DB

	mu   sync.Mutex
	seen map[int64]*model.Bookmark
}

// NewBookmarkPostgres creates a new BookmarkPostgres repository.
func NewBookmarkPostgres(db *sql.DB) *BookmarkPostgres {
	return &BookmarkPostgres{
		db:   db,
		seen: make(map[int64]*model.Bookmark),
	}
}

var _ repository.BookmarkRepository = (*BookmarkPostgres)(nil)

const bookmarkColumns = `id, title, url, notes, date_added`

// Add inserts a bookmark row and backfills the generated ID and timestamp onto b.
func (r *BookmarkPostgres) Add(ctx context.Context, b *model.Bookmark) error {
	const q = `
		INSERT INTO bookmarks (title, url, notes)
		VALUES ($1, $2, $3)
		RETURNING id, date_added
	`
	if err := r.db.QueryRowContext(ctx, q, b.Title, b.URL, nullString(b.Notes)).
		Scan(&b.ID, &b.DateAdded); err != nil {
		return err
	}
	r.markSeen(b)
	return nil
}

// Get fetches a single bookmark by its ID. A missing row yields (nil, nil).
func (r *BookmarkPostgres) Get(ctx context.Context, id int64) (*model.Bookmark, error) {
	const q = `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = $1`
	b, err := scanBookmark(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	r.markSeen(b)
	return b, nil
}

// List returns all bookmarks in insertion order.
func (r *BookmarkPostgres) List(ctx context.Context) ([]model.Bookmark, error) {
	const q = `SELECT ` + bookmarkColumns + ` FROM bookmarks ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites title, url and notes of the row with b.ID.
// Nothing happens, and nil is returned, when the ID does not exist.
func (r *BookmarkPostgres) Update(ctx context.Context, b *model.Bookmark) error {
	const q = `UPDATE bookmarks SET title = $1, url = $2, notes = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, q, b.Title, b.URL, nullString(b.Notes), b.ID)
	return err
}

// Delete removes a bookmark by ID. It does not return an error if the row does not exist.
func (r *BookmarkPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM bookmarks WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// Seen returns one bookmark per ID this repository has handed out or stored so far.
func (r *BookmarkPostgres) Seen() []*model.Bookmark {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.Bookmark, 0, len(r.seen))
	for _, b := range r.seen {
		out = append(out, b)
	}
	return out
}

func (r *BookmarkPostgres) markSeen(b *model.Bookmark) {
	r.mu.Lock()
	r.seen[b.ID] = b
	r.mu.Unlock()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (*model.Bookmark, error) {
	var (
		b     model.Bookmark
		notes sql.NullString
	)
	if err := row.Scan(&b.ID, &b.Title, &b.URL, &notes, &b.DateAdded); err != nil {
		return nil, err
	}
	b.Notes = notes.String
	return &b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
