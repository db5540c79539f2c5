package handlers

import (
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const defaultContactPageSize = 20

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	submission, err := h.contacts.Submit(c.UserContext(), &req)
	if err != nil {
		return respondError(c, "submit_contact", err)
	}
	return c.Status(fiber.StatusCreated).JSON(submission)
}

// List returns stored submissions, newest first (admin only).
func (h *ContactHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultContactPageSize)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || offset < 0 {
		return badRequest(c, "limit must be positive and offset non-negative")
	}

	rows, total, err := h.contacts.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, "list_contacts", err)
	}

	views := make([]dto.ContactSubmissionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dto.ContactSubmissionView{ContactSubmission: row, SpamReason: row.SpamReason})
	}
	return c.JSON(dto.ContactListResponse{
		Submissions: views,
		Total:       total,
		Limit:       min(limit, services.MaxContactPageSize),
		Offset:      offset,
	})
}
