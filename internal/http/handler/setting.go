package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
)

type settingRequest struct {
	Value *string `json:"value"`
}

// ListSettings returns all settings.
func ListSettings(svc service.SettingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// GetSetting returns one setting by key.
func GetSetting(svc service.SettingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		st, err := svc.Get(c.UserContext(), key)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "setting not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(st)
	}
}

// PutSetting creates or replaces a setting. Admin only.
func PutSetting(svc service.SettingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		var req settingRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		st, err := svc.Set(c.UserContext(), key, req.Value)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(st)
	}
}
