package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
)

// ProfileLocalKey is the key under which RequireAdmin stores the resolved
// profile for downstream handlers.
const ProfileLocalKey = "profile"

// RequireAdmin guards mutating routes. It expects a bearer session token,
// resolves it to an account and rejects anyone but the configured admin.
func RequireAdmin(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		profile, err := auth.Identify(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		if !profile.IsAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		c.Locals(ProfileLocalKey, profile)
		return c.Next()
	}
}

// RequireUser is RequireAdmin without the role check; any valid session
// passes. Used by /auth/me.
func RequireUser(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		profile, err := auth.Identify(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals(ProfileLocalKey, profile)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
