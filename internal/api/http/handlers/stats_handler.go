package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/omnimindia-api/internal/service"
)

// StatsHandler serves the static market statistics.
type StatsHandler struct {
	market *service.MarketService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(market *service.MarketService) *StatsHandler {
	return &StatsHandler{market: market}
}

// GetAll handles GET /api/stats.
func (h *StatsHandler) GetAll(c *fiber.Ctx) error {
	snap := h.market.Snapshot()
	return c.JSON(fiber.Map{
		"data":      snap.Data,
		"timestamp": snap.GeneratedAt.Format(time.RFC3339),
		"count":     snap.Count,
	})
}
