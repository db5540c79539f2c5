package handlers

import (
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	admin *services.AdminService
	seed  *services.SeedService
}

func NewAdminHandler(admin *services.AdminService, seed *services.SeedService) *AdminHandler {
	return &AdminHandler{admin: admin, seed: seed}
}

// Status reports the caller's admin flag. Anonymous callers get false.
func (h *AdminHandler) Status(c *fiber.Ctx) error {
	resp, err := h.admin.Status(c.UserContext(), auth.FromFiber(c))
	if err != nil {
		return respondError(c, "admin_status", err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) Grant(c *fiber.Ctx) error {
	resp, err := h.admin.Grant(c.UserContext(), auth.FromFiber(c))
	if err != nil {
		return respondError(c, "grant_admin", err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) Check(c *fiber.Ctx) error {
	resp, err := h.admin.Require(c.UserContext(), auth.FromFiber(c))
	if err != nil {
		return respondError(c, "require_admin", err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) Seed(c *fiber.Ctx) error {
	result, err := h.seed.Seed(c.UserContext())
	if err != nil {
		return respondError(c, "seed_content", err)
	}
	return c.JSON(dto.SeedResponse{
		Success:      true,
		Seeded:       result.Seeded,
		Services:     result.Services,
		Projects:     result.Projects,
		Testimonials: result.Testimonials,
		Pricing:      result.Pricing,
	})
}
