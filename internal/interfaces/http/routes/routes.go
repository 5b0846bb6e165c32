package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"github.com/LeeFlannery/dashboard-playground/internal/application/usecases"
	"github.com/LeeFlannery/dashboard-playground/internal/interfaces/http/handlers"
	"github.com/LeeFlannery/dashboard-playground/internal/interfaces/http/middleware"
)

// SetupRoutes registra as rotas da API. limiter pode ser nil.
func SetupRoutes(app *fiber.App, dashboardUseCase usecases.DashboardUseCase, limiter *middleware.RateLimiter) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New(etag.Config{Weak: true}))

	h := handlers.NewHandlers(dashboardUseCase)

	// Health check
	app.Get("/health", h.Health)

	groups := middleware.SetupRouteGroups(app, limiter.Handler())

	// Snapshots
	groups.Snapshots.Post("/", h.Dashboard.CreateSnapshot)
	groups.Snapshots.Get("/:id", h.Dashboard.GetSnapshot)

	// Dashboard
	groups.Dashboard.Get("/", h.Dashboard.GetUnifiedDashboard)
	groups.Dashboard.Get("/summary", h.Dashboard.GetSummary)

	// Charts
	groups.Charts.Get("/", h.Dashboard.ListCharts)
	groups.Charts.Get("/:chart", h.Dashboard.GetChart)

	// Entity listings
	groups.API.Get("/sessions", h.Entities.GetSessions)
	groups.API.Get("/users", h.Entities.GetUsers)
	groups.API.Get("/conversions", h.Entities.GetConversions)
}
