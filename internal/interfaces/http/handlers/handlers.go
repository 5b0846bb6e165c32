package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/LeeFlannery/dashboard-playground/internal/application/usecases"
	"github.com/LeeFlannery/dashboard-playground/internal/domain/repositories"
)

// Parâmetros de query aceitos como filtros
var filterParams = []string{"from", "to", "user_role", "device_type", "conversion_type", "source"}

type Handlers struct {
	Dashboard *DashboardHandler
	Entities  *EntityHandler
}

func NewHandlers(dashboardUseCase usecases.DashboardUseCase) *Handlers {
	return &Handlers{
		Dashboard: NewDashboardHandler(dashboardUseCase),
		Entities:  NewEntityHandler(dashboardUseCase),
	}
}

// Health responde ao health check
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// parseDashboardRequest extrai snapshot, semente e filtros da query
func parseDashboardRequest(c *fiber.Ctx) (usecases.DashboardRequest, error) {
	var req usecases.DashboardRequest

	if id := c.Query("snapshot_id"); id != "" {
		if _, err := uuid.Parse(id); err != nil {
			return req, fmt.Errorf("parâmetro 'snapshot_id' inválido: %s", id)
		}
		req.SnapshotID = id
	}

	seed, err := parseSeed(c)
	if err != nil {
		return req, err
	}
	req.Seed = seed

	params := make(map[string]string, len(filterParams))
	for _, key := range filterParams {
		params[key] = c.Query(key, "")
	}
	filters, err := usecases.ParseFilters(params)
	if err != nil {
		return req, err
	}
	req.Filters = filters

	return req, nil
}

func parseSeed(c *fiber.Ctx) (*uint64, error) {
	raw := c.Query("seed")
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || seed == 0 {
		return nil, fmt.Errorf("parâmetro 'seed' inválido: %s", raw)
	}
	return &seed, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// respondError traduz erros de domínio para status HTTP
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrSnapshotNotFound), errors.Is(err, usecases.ErrUnknownChart):
		status = fiber.StatusNotFound
	case errors.Is(err, usecases.ErrInvalidFilter):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
