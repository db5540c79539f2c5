package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired guards admin routes. A request passes when it carries:
// 1. the configured X-Admin-Token
// 2. a JWT whose subject is listed in ADMIN_USER_IDS
// 3. a JWT whose user has the admin flag in the store
// Run it after OptionalJWT or JWTProtected.
func AdminRequired(admin *services.AdminService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if subtle.ConstantTimeCompare([]byte(c.Get("X-Admin-Token")), []byte(cfg.AdminToken)) == 1 {
				return c.Next()
			}
		}

		caller := auth.FromFiber(c)
		if caller.Authenticated && contains(cfg.AdminUserIDs, caller.UserID.String()) {
			return c.Next()
		}

		_, err := admin.Require(c.UserContext(), caller)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, auth.ErrAuthRequired):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		case errors.Is(err, services.ErrAccessDenied):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		default:
			slog.Error("admin check failed", "error", err, "path", c.Path())
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "Service temporarily unavailable",
			})
		}
	}
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
