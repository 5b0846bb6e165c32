package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LeeFlannery/dashboard-playground/internal/application/usecases"
)

// DashboardHandler lida com requisições relacionadas a dashboards
type DashboardHandler struct {
	dashboardUseCase usecases.DashboardUseCase
}

// NewDashboardHandler cria uma nova instância de DashboardHandler
func NewDashboardHandler(dashboardUseCase usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetUnifiedDashboard retorna resumo, cards e todos os gráficos de um snapshot
// @Summary Retorna dados consolidados para o dashboard
// @Tags dashboard
// @Produce json
// @Param snapshot_id query string false "ID de um snapshot existente"
// @Param seed query int false "Semente para gerar um novo snapshot"
// @Param from query string false "Data inicial (formato: 2006-01-02)"
// @Param to query string false "Data final (formato: 2006-01-02)"
// @Param user_role query string false "admin, user ou moderator"
// @Param device_type query string false "desktop, mobile ou tablet"
// @Param conversion_type query string false "Tipo de conversão"
// @Param source query string false "Origem da conversão"
// @Success 200 {object} map[string]interface{} "Dados consolidados do dashboard"
// @Success 304 "Conteúdo não modificado"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 404 {object} map[string]interface{} "Snapshot não encontrado"
// @Router /dashboard [get]
func (h *DashboardHandler) GetUnifiedDashboard(c *fiber.Ctx) error {
	startTime := time.Now()

	req, err := parseDashboardRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := h.dashboardUseCase.GetUnifiedDashboard(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	// Verificar se o cliente já tem a versão mais recente
	if result.ETag != "" {
		if c.Get(fiber.HeaderIfNoneMatch) == result.ETag {
			return c.SendStatus(fiber.StatusNotModified)
		}
		c.Set(fiber.HeaderETag, result.ETag)
	}

	return c.JSON(fiber.Map{
		"data": result,
		"performance": fiber.Map{
			"execution_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}

// GetSummary retorna apenas o resumo agregado
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	req, err := parseDashboardRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	snapshotID, summary, err := h.dashboardUseCase.GetSummary(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"snapshotId": snapshotID,
		"data":       summary,
	})
}

// GetChart retorna a série de um gráfico pelo nome
func (h *DashboardHandler) GetChart(c *fiber.Ctx) error {
	req, err := parseDashboardRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	name := c.Params("chart")
	snapshotID, points, err := h.dashboardUseCase.GetChart(c.UserContext(), name, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"snapshotId": snapshotID,
		"chart":      name,
		"data":       points,
	})
}

// ListCharts retorna os nomes de gráfico disponíveis
func (h *DashboardHandler) ListCharts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": usecases.ChartNames(),
	})
}

// CreateSnapshot gera e armazena um novo snapshot
func (h *DashboardHandler) CreateSnapshot(c *fiber.Ctx) error {
	seed, err := parseSeed(c)
	if err != nil {
		return badRequest(c, err)
	}

	info, err := h.dashboardUseCase.CreateSnapshot(c.UserContext(), seed)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": info,
	})
}

// GetSnapshot retorna os metadados de um snapshot armazenado
func (h *DashboardHandler) GetSnapshot(c *fiber.Ctx) error {
	info, err := h.dashboardUseCase.GetSnapshot(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": info,
	})
}
