package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EstimateHandler struct{}

func NewEstimateHandler() *EstimateHandler {
	return &EstimateHandler{}
}

func (h *EstimateHandler) Calculate(c *fiber.Ctx) error {
	var req dto.EstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	est, err := services.CalculateEstimate(req.Area, req.Floors)
	if err != nil {
		if errors.Is(err, services.ErrInvalidArea) || errors.Is(err, services.ErrInvalidFloors) {
			return badRequest(c, err.Error())
		}
		return respondError(c, "estimate", err)
	}

	return c.JSON(dto.EstimateResponse{
		HouseType:  req.HouseType,
		Area:       est.Area,
		Floors:     est.Floors,
		RatePerM2:  est.RatePerM2,
		Multiplier: est.Multiplier,
		Total:      est.Total,
		Formatted:  est.Formatted(),
	})
}
