package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
)

// ListTags returns the whole tag catalog.
func ListTags(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(tags)
	}
}
