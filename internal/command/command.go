// Package command holds the bookmark commands behind the command-line tool.
//
// Every command takes the same loosely-typed Data map. Missing input is
// reported through Result.Message, while storage and network failures come
// back as errors.
package command

import (
	"context"

	"barky/internal/database/sqlite"
	"barky/internal/model"
)

const (
	bookmarksTable = "bookmarks"

	// DateLayout is how date_added is stored: UTC, microsecond precision, no zone suffix.
	DateLayout = "2006-01-02T15:04:05.000000"
)

// Data is the input to Execute. A nil Data is valid for commands without arguments.
type Data map[string]string

// Result is what a command hands back to its caller.
type Result struct {
	Message   string
	Bookmarks []model.Bookmark
	// Terminate asks the surrounding loop to stop.
	Terminate bool
}

// Command is a single user-facing action.
type Command interface {
	Execute(ctx context.Context, data Data) (Result, error)
}

// Store is the raw-SQL surface the commands need. *sqlite.Manager implements it.
type Store interface {
	CreateTable(ctx context.Context, table string, columns []sqlite.Column) error
	Add(ctx context.Context, table string, data map[string]any) (int64, error)
	Select(ctx context.Context, table string, criteria map[string]any, orderBy string) ([]sqlite.Record, error)
	Delete(ctx context.Context, table string, criteria map[string]any) (int64, error)
	Update(ctx context.Context, table string, criteria, data map[string]any) (int64, error)
}

var _ Store = (*sqlite.Manager)(nil)

// has reports whether key is present with a non-empty value.
func (d Data) has(key string) bool {
	return d[key] != ""
}
