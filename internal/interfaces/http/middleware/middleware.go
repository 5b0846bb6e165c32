package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupMiddlewares registra os middlewares globais da API
func SetupMiddlewares(app *fiber.App, allowOrigins string) {
	app.Use(recover.New())

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, If-None-Match",
		ExposeHeaders: "ETag",
		MaxAge:        300, // 5 minutes
	}))

	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))

	app.Use(PerformanceLogger())
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	API       fiber.Router
	Snapshots fiber.Router
	Dashboard fiber.Router
	Charts    fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, limiter fiber.Handler) RouteGroups {
	api := app.Group("/api/v1")
	if limiter != nil {
		api.Use(limiter)
	}

	return RouteGroups{
		API:       api,
		Snapshots: api.Group("/snapshots"),
		Dashboard: api.Group("/dashboard"),
		Charts:    api.Group("/charts"),
	}
}
