package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/handler"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	HandSign *handler.HandSignHandler
	Video    *handler.VideoHandler
	Submit   *handler.SubmitHandler
	Progress *handler.ProgressHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health checks (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus exposition
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	api.Post("/login", h.Auth.Login, middleware.NewLoginRateLimiter().Handler())

	api.Get("/handsigns", h.HandSign.List)
	api.Get("/videos", h.Video.List)

	api.Post("/submit", h.Submit.Submit, middleware.NewSubmitRateLimiter().Handler())

	api.Get("/progress/:userId", h.Progress.Get)
}
