package handler

import (
	"github.com/gofiber/fiber/v2"

	"barky/internal/service"
)

// ListSnippets godoc
//
// @Summary  List snippet metadata
// @Tags     snippets
// @Produce  json
// @Success  200 {object} service.SnippetListResult
// @Router   /snippets [get]
func ListSnippets(svc service.SnippetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "snippet")
		}
		return c.JSON(res)
	}
}

// CreateSnippet godoc
//
// @Summary  Store a snippet
// @Tags     snippets
// @Accept   json
// @Produce  json
// @Param    snippet body service.SnippetInput true "Snippet"
// @Success  201 {object} model.Snippet
// @Failure  400 {object} errorPayload
// @Router   /snippets [post]
func CreateSnippet(svc service.SnippetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SnippetInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}
		s, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, "snippet")
		}
		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

// GetSnippet godoc
//
// @Summary  Get a snippet with its code
// @Tags     snippets
// @Produce  json
// @Param    id path int true "Snippet ID"
// @Success  200 {object} model.Snippet
// @Failure  404 {object} errorPayload
// @Router   /snippets/{id} [get]
func GetSnippet(svc service.SnippetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		s, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "snippet")
		}
		return c.JSON(s)
	}
}

// SnippetRaw godoc
//
// @Summary  Redirect to the raw snippet body
// @Tags     snippets
// @Param    id path int true "Snippet ID"
// @Success  302
// @Failure  404 {object} errorPayload
// @Router   /snippets/{id}/raw [get]
func SnippetRaw(svc service.SnippetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.RawURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "snippet")
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}

// DeleteSnippet godoc
//
// @Summary  Delete a snippet
// @Tags     snippets
// @Param    id path int true "Snippet ID"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /snippets/{id} [delete]
func DeleteSnippet(svc service.SnippetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "snippet")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
