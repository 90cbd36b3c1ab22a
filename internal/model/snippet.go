package model

import "time"

// Snippet is a stored piece of source code.
// The code body lives in object storage under StoragePath; Code is only
// populated when a single snippet is fetched.
type Snippet struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Language    string    `json:"language"`
	Code        string    `json:"code,omitempty"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
