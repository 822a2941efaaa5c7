// Package http exposes the keep-alive surface: a trivial liveness endpoint so
// the hosting platform keeps the process warm. It carries none of the ticket
// workflow.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-bot/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Live)
	app.Get("/health/live", cfg.Health.Live)
}
