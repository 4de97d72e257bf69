package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RootHandler serves the root info endpoint.
type RootHandler struct {
	message string
	version string
}

// NewRootHandler constructs handler.
func NewRootHandler(message, version string) *RootHandler {
	return &RootHandler{message: message, version: version}
}

// Info handles GET /.
func (h *RootHandler) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": h.message,
		"version": h.version,
		"docs":    "/api/docs",
	})
}
