package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/LeeFlannery/dashboard-playground/internal/application/usecases"
)

// EntityHandler lista sessões, usuários e conversões de um snapshot
type EntityHandler struct {
	dashboardUseCase usecases.DashboardUseCase
}

func NewEntityHandler(dashboardUseCase usecases.DashboardUseCase) *EntityHandler {
	return &EntityHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetSessions retorna as sessões do snapshot com paginação e filtros
func (h *EntityHandler) GetSessions(c *fiber.Ctx) error {
	req, page, limit, err := parseListRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := h.dashboardUseCase.ListSessions(c.UserContext(), req, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetUsers retorna os usuários do snapshot com paginação e filtros
func (h *EntityHandler) GetUsers(c *fiber.Ctx) error {
	req, page, limit, err := parseListRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := h.dashboardUseCase.ListUsers(c.UserContext(), req, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetConversions retorna as conversões do snapshot com paginação e filtros
func (h *EntityHandler) GetConversions(c *fiber.Ctx) error {
	req, page, limit, err := parseListRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := h.dashboardUseCase.ListConversions(c.UserContext(), req, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func parseListRequest(c *fiber.Ctx) (usecases.DashboardRequest, int, int, error) {
	req, err := parseDashboardRequest(c)
	if err != nil {
		return req, 0, 0, err
	}

	page, err := strconv.Atoi(c.Query("page", strconv.Itoa(usecases.DefaultPage)))
	if err != nil || page < 1 {
		return req, 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid 'page' parameter")
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(usecases.DefaultLimit)))
	if err != nil || limit < 1 {
		return req, 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid 'limit' parameter")
	}

	page, limit = usecases.NormalizePagination(page, limit)
	return req, page, limit, nil
}
