package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
)

type createLifeEntryRequest struct {
	Title       string  `json:"title"`
	Summary     *string `json:"summary"`
	IsPublished bool    `json:"is_published"`
	Password    string  `json:"password"`
}

type updateLifeEntryRequest struct {
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`
	IsPublished *bool   `json:"is_published"`
	Password    *string `json:"password"`
}

// ListLifeEntries returns published life-log entries, newest first.
func ListLifeEntries(svc service.LifeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid limit or offset")
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetLifeEntry returns one life-log entry.
func GetLifeEntry(svc service.LifeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		e, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "entry not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(e)
	}
}

// CreateLifeEntry creates a life-log entry. Admin only.
func CreateLifeEntry(svc service.LifeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createLifeEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Title == "" {
			return writeError(c, fiber.StatusBadRequest, "TITLE_REQUIRED", "title is required")
		}

		e, err := svc.Create(c.UserContext(), service.CreateLifeEntryInput{
			Title:       req.Title,
			Summary:     req.Summary,
			IsPublished: req.IsPublished,
			Password:    req.Password,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// UpdateLifeEntry partially updates a life-log entry. Admin only.
func UpdateLifeEntry(svc service.LifeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req updateLifeEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		e, err := svc.Update(c.UserContext(), id, service.UpdateLifeEntryInput{
			Title:       req.Title,
			Summary:     req.Summary,
			IsPublished: req.IsPublished,
			Password:    req.Password,
		})
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "entry not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(e)
	}
}

// DeleteLifeEntry deletes a life-log entry. Admin only.
func DeleteLifeEntry(svc service.LifeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "entry not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PublishLifeEntry flips the publish flag. Admin only.
func PublishLifeEntry(svc service.LifeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req publishRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.SetPublished(c.UserContext(), id, req.IsPublished); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "entry not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"id": id, "is_published": req.IsPublished})
	}
}
