package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/http/middleware"
	"blogapi/internal/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// Register creates a new account.
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			return writeError(c, fiber.StatusBadRequest, "FIELDS_REQUIRED", "username, email and password are required")
		}

		u, err := svc.Register(c.UserContext(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUsernameTaken):
				return writeError(c, fiber.StatusConflict, "USERNAME_TAKEN", "username already taken")
			case errors.Is(err, service.ErrEmailTaken):
				return writeError(c, fiber.StatusConflict, "EMAIL_TAKEN", "email already registered")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// Me returns the authenticated account with its resolved role.
// Requires middleware.RequireUser upstream.
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile := profileFromCtx(c)
		if profile == nil {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}
		return c.JSON(profile)
	}
}

// profileFromCtx extracts the profile stored by the auth middleware.
func profileFromCtx(c *fiber.Ctx) *service.Profile {
	if v := c.Locals(middleware.ProfileLocalKey); v != nil {
		if p, ok := v.(*service.Profile); ok {
			return p
		}
	}
	return nil
}
