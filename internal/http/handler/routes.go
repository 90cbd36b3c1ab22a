package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"barky/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; validation and lookups live in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, bookmarks service.BookmarkService, snippets service.SnippetService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	b := app.Group("/bookmarks")
	b.Get("/", ListBookmarks(bookmarks))
	b.Post("/", CreateBookmark(bookmarks))
	b.Get("/:id", GetBookmark(bookmarks))
	b.Put("/:id", UpdateBookmark(bookmarks))
	b.Delete("/:id", DeleteBookmark(bookmarks))

	s := app.Group("/snippets")
	s.Get("/", ListSnippets(snippets))
	s.Post("/", CreateSnippet(snippets))
	s.Get("/:id", GetSnippet(snippets))
	s.Get("/:id/raw", SnippetRaw(snippets))
	s.Delete("/:id", DeleteSnippet(snippets))
}
