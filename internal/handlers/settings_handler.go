package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings returns every site setting decoded to its declared type.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	result, err := h.settings.All(c.UserContext())
	if err != nil {
		return respondError(c, "get_settings", err)
	}
	return c.JSON(result)
}

// SetSetting creates or updates a setting (admin only).
func (h *SettingsHandler) SetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return badRequest(c, "Key parameter is required")
	}

	var req dto.SettingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	setting, err := h.settings.Set(c.UserContext(), key, req.Value, req.Type)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSettingType) || errors.Is(err, services.ErrInvalidSettingValue) {
			return badRequest(c, err.Error())
		}
		return respondError(c, "set_setting", err)
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Setting updated successfully",
		"setting": fiber.Map{
			"key":   setting.Key,
			"value": setting.Value,
			"type":  setting.Type,
		},
	})
}

// DeleteSetting removes a setting (admin only).
func (h *SettingsHandler) DeleteSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if err := h.settings.Delete(c.UserContext(), key); err != nil {
		if errors.Is(err, services.ErrSettingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Setting not found",
			})
		}
		return respondError(c, "delete_setting", err)
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Setting deleted successfully",
	})
}
