package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Rotas que agregam snapshots inteiros
var monitoredRoutes = []string{
	"/api/v1/dashboard",
	"/api/v1/charts",
}

// PerformanceLogger é um middleware que mede o tempo de resposta das rotas críticas
func PerformanceLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.Printf(
			"[PERFORMANCE] %s %s - %d - Duration: %v - Query params: %s",
			c.Method(),
			path,
			c.Response().StatusCode(),
			duration,
			c.Request().URI().QueryArgs().String(),
		)

		return err
	}
}
