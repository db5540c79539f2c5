package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the gate and store error kinds to their HTTP status.
// Anything else is logged and reported as a 500.
func respondError(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, auth.ErrAuthRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	case errors.Is(err, services.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	case errors.Is(err, services.ErrStoreUnavailable):
		slog.Error("store unavailable",
			"action", action,
			"route", c.Path(),
			"request_id", requestID(c),
			"error", err,
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Service temporarily unavailable",
		})
	default:
		slog.Error("request failed",
			"action", action,
			"route", c.Path(),
			"request_id", requestID(c),
			"error", err,
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
