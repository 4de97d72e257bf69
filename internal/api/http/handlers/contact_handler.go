package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/omnimindia-api/internal/api/dto"
	"github.com/spec-kit/omnimindia-api/internal/service"
	"github.com/spec-kit/omnimindia-api/pkg/util"
)

// ContactHandler exposes the contact-form endpoint.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewBadRequest("invalid payload")
	}

	entry, err := h.contacts.Submit(c.UserContext(), req.Name, req.Email, req.Message)
	if err != nil {
		return err
	}

	return c.JSON(dto.ContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		ID:      entry.ID,
	})
}
