package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventaripro/internal/application/dto"
	"github.com/jhoicas/inventaripro/internal/application/query"
)

// DashboardHandler sirve las vistas agregadas del panel. Todo es derivado
// bajo demanda por la capa de consultas; aquí no hay estado.
type DashboardHandler struct {
	queries *query.Service
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(queries *query.Service) *DashboardHandler {
	return &DashboardHandler{queries: queries}
}

// Stats godoc
// @Summary      Tarjetas principales del panel
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.queries.DashboardStats())
}

// Articles godoc
// @Summary      Artículos agrupados por descripción
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.ArticleGroupDTO
// @Router       /api/dashboard/articles [get]
func (h *DashboardHandler) Articles(c *fiber.Ctx) error {
	groups := h.queries.GroupByDescription()
	if groups == nil {
		groups = []dto.ArticleGroupDTO{}
	}
	return c.JSON(groups)
}

// Locations godoc
// @Summary      Stock por ubicación
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.LocationTotalDTO
// @Router       /api/dashboard/locations [get]
func (h *DashboardHandler) Locations(c *fiber.Ctx) error {
	totals := h.queries.QuantityByLocation()
	if totals == nil {
		totals = []dto.LocationTotalDTO{}
	}
	return c.JSON(totals)
}

// ConsumptionTrend godoc
// @Summary      Consumo de los últimos 6 meses
// @Description  Serie mensual con el mes en curso incluido; los meses sin
//
//	consumo aparecen en cero.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.MonthlyConsumptionDTO
// @Router       /api/dashboard/consumption-trend [get]
func (h *DashboardHandler) ConsumptionTrend(c *fiber.Ctx) error {
	return c.JSON(h.queries.MonthlyConsumption())
}

// Alerts godoc
// @Summary      Avisos vigentes
// @Description  Recalculados en cada petición: warning por producto próximo a
//
//	vencer, danger por stock bajo.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/alerts [get]
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	alerts := h.queries.Alerts()
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertResponse{Type: a.Type, Message: a.Message, Date: a.Date})
	}
	return c.JSON(out)
}
