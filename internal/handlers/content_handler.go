package handlers

import (
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	catalog *services.CatalogService
}

func NewContentHandler(catalog *services.CatalogService) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

func (h *ContentHandler) ListServices(c *fiber.Ctx) error {
	items, err := h.catalog.ListServices(c.UserContext())
	if err != nil {
		return respondError(c, "list_services", err)
	}
	return c.JSON(items)
}

func (h *ContentHandler) ListProjects(c *fiber.Ctx) error {
	items, err := h.catalog.ListProjects(c.UserContext())
	if err != nil {
		return respondError(c, "list_projects", err)
	}
	return c.JSON(items)
}

func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	items, err := h.catalog.ListTestimonials(c.UserContext())
	if err != nil {
		return respondError(c, "list_testimonials", err)
	}
	return c.JSON(items)
}

func (h *ContentHandler) ListPricing(c *fiber.Ctx) error {
	items, err := h.catalog.ListPricing(c.UserContext())
	if err != nil {
		return respondError(c, "list_pricing", err)
	}
	return c.JSON(items)
}
