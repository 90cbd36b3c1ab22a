package model

import "time"

// Bookmark is a saved title/URL/notes record.
// ID is zero until storage assigns it and never changes afterwards.
type Bookmark struct {
	ID        int64     `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	URL       string    `json:"url" yaml:"url"`
	Notes     string    `json:"notes" yaml:"notes,omitempty"`
	DateAdded time.Time `json:"date_added" yaml:"date_added"`
}
