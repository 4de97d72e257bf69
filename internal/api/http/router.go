package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/omnimindia-api/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Root        *handlers.RootHandler
	Health      *handlers.HealthHandler
	Stats       *handlers.StatsHandler
	Contact     *handlers.ContactHandler
	ContactGate fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Root.Info)

	api := app.Group("/api")
	api.Get("/health", cfg.Health.Status)
	api.Get("/health/ready", cfg.Health.Ready)
	api.Get("/stats", cfg.Stats.GetAll)
	api.Post("/contact", cfg.ContactGate, cfg.Contact.Submit)
}
