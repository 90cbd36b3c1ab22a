package command

import (
	"context"
	"strconv"
	"time"

	"barky/internal/database/sqlite"
	"barky/internal/model"
)

const (
	msgBookmarkAdded    = "Bookmark added!"
	msgTitleURLRequired = "Error: Title and URL are required."
)

var bookmarkColumns = []sqlite.Column{
	{Name: "id", Definition: "integer primary key autoincrement"},
	{Name: "title", Definition: "text not null"},
	{Name: "url", Definition: "text not null"},
	{Name: "notes", Definition: "text"},
	{Name: "date_added", Definition: "text not null"},
}

// CreateBookmarksTable creates the bookmarks table if it is missing.
type CreateBookmarksTable struct {
	Store Store
}

func (c CreateBookmarksTable) Execute(ctx context.Context, _ Data) (Result, error) {
	if err := c.Store.CreateTable(ctx, bookmarksTable, bookmarkColumns); err != nil {
		return Result{}, err
	}
	return Result{Message: "Bookmarks table created!"}, nil
}

// AddBookmark stores title, url and optional notes, stamping date_added.
type AddBookmark struct {
	Store Store
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c AddBookmark) Execute(ctx context.Context, data Data) (Result, error) {
	if !data.has("title") || !data.has("url") {
		return Result{Message: msgTitleURLRequired}, nil
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	row := map[string]any{
		"title":      data["title"],
		"url":        data["url"],
		"date_added": now().UTC().Format(DateLayout),
	}
	if data.has("notes") {
		row["notes"] = data["notes"]
	}

	if _, err := c.Store.Add(ctx, bookmarksTable, row); err != nil {
		return Result{}, err
	}
	return Result{Message: msgBookmarkAdded}, nil
}

// ListBookmarks returns every bookmark ordered by OrderBy (date_added when empty).
type ListBookmarks struct {
	Store   Store
	OrderBy string
}

func (c ListBookmarks) Execute(ctx context.Context, _ Data) (Result, error) {
	order := c.OrderBy
	if order == "" {
		order = "date_added"
	}
	recs, err := c.Store.Select(ctx, bookmarksTable, nil, order)
	if err != nil {
		return Result{}, err
	}

	out := make([]model.Bookmark, 0, len(recs))
	for _, r := range recs {
		out = append(out, recordToBookmark(r))
	}
	return Result{Bookmarks: out}, nil
}

// DeleteBookmark removes the bookmark named by id. Unknown ids are not an error.
type DeleteBookmark struct {
	Store Store
}

func (c DeleteBookmark) Execute(ctx context.Context, data Data) (Result, error) {
	if !data.has("id") {
		return Result{Message: "Error: ID is required for deletion."}, nil
	}
	if _, err := c.Store.Delete(ctx, bookmarksTable, map[string]any{"id": idValue(data["id"])}); err != nil {
		return Result{}, err
	}
	return Result{Message: "Bookmark deleted!"}, nil
}

// EditBookmark overwrites whichever of title, url and notes are present.
// Title and url may be changed but never blanked; notes may be cleared.
type EditBookmark struct {
	Store Store
}

func (c EditBookmark) Execute(ctx context.Context, data Data) (Result, error) {
	if !data.has("id") {
		return Result{Message: "Error: ID is required for updating a bookmark."}, nil
	}

	for _, k := range []string{"title", "url"} {
		if v, ok := data[k]; ok && v == "" {
			return Result{Message: msgTitleURLRequired}, nil
		}
	}

	fields := make(map[string]any)
	for _, k := range []string{"title", "url", "notes"} {
		if v, ok := data[k]; ok {
			fields[k] = v
		}
	}
	if len(fields) > 0 {
		if _, err := c.Store.Update(ctx, bookmarksTable, map[string]any{"id": idValue(data["id"])}, fields); err != nil {
			return Result{}, err
		}
	}
	return Result{Message: "Bookmark updated!"}, nil
}

// Quit signals the loop to stop; it never exits the process itself.
type Quit struct{}

func (Quit) Execute(context.Context, Data) (Result, error) {
	return Result{Message: "Exiting application.", Terminate: true}, nil
}

// idValue binds numeric ids as integers and leaves anything else for SQLite to compare.
func idValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

func recordToBookmark(r sqlite.Record) model.Bookmark {
	var b model.Bookmark
	if v, ok := r["id"].(int64); ok {
		b.ID = v
	}
	b.Title, _ = r["title"].(string)
	b.URL, _ = r["url"].(string)
	b.Notes, _ = r["notes"].(string)
	if s, ok := r["date_added"].(string); ok {
		if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
			b.DateAdded = t
		}
	}
	return b
}
