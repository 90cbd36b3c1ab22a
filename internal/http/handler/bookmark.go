package handler

import (
	"github.com/gofiber/fiber/v2"

	"barky/internal/service"
)

// ListBookmarks godoc
//
// @Summary  List bookmarks
// @Tags     bookmarks
// @Produce  json
// @Success  200 {object} service.BookmarkListResult
// @Failure  500 {object} errorPayload
// @Router   /bookmarks [get]
func ListBookmarks(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "bookmark")
		}
		return c.JSON(res)
	}
}

// CreateBookmark godoc
//
// @Summary  Create a bookmark
// @Tags     bookmarks
// @Accept   json
// @Produce  json
// @Param    bookmark body service.BookmarkInput true "Bookmark"
// @Success  201 {object} model.Bookmark
// @Failure  400 {object} errorPayload
// @Router   /bookmarks [post]
func CreateBookmark(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.BookmarkInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}
		b, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, "bookmark")
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

// GetBookmark godoc
//
// @Summary  Get a bookmark
// @Tags     bookmarks
// @Produce  json
// @Param    id path int true "Bookmark ID"
// @Success  200 {object} model.Bookmark
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /bookmarks/{id} [get]
func GetBookmark(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		b, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "bookmark")
		}
		return c.JSON(b)
	}
}

// UpdateBookmark godoc
//
// @Summary  Replace a bookmark's title, url and notes
// @Tags     bookmarks
// @Accept   json
// @Produce  json
// @Param    id       path int                   true "Bookmark ID"
// @Param    bookmark body service.BookmarkInput true "Bookmark"
// @Success  200 {object} model.Bookmark
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /bookmarks/{id} [put]
func UpdateBookmark(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.BookmarkInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}
		b, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err, "bookmark")
		}
		return c.JSON(b)
	}
}

// DeleteBookmark godoc
//
// @Summary  Delete a bookmark
// @Tags     bookmarks
// @Param    id path int true "Bookmark ID"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /bookmarks/{id} [delete]
func DeleteBookmark(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "bookmark")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
