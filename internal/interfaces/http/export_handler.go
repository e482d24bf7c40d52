package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventaripro/internal/application/query"
	"github.com/jhoicas/inventaripro/internal/infrastructure/export"
)

// ExportHandler sirve los reportes descargables. Cada descarga es una foto
// del inventario en el momento de la petición.
type ExportHandler struct {
	queries *query.Service
	now     func() time.Time
}

// NewExportHandler construye el handler.
func NewExportHandler(queries *query.Service) *ExportHandler {
	return &ExportHandler{queries: queries, now: time.Now}
}

// SummaryCSV godoc
// @Summary      Descargar CSV resumen
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/inventory.csv [get]
func (h *ExportHandler) SummaryCSV(c *fiber.Ctx) error {
	data, err := export.SummaryCSV(h.queries.FilterProducts(query.ProductFilter{}))
	if err != nil {
		return errorResponse(c, err)
	}
	return h.send(c, data, "text/csv; charset=utf-8",
		fmt.Sprintf("inventario_%s.csv", h.now().Format("2006-01-02")))
}

// FullCSV godoc
// @Summary      Descargar CSV completo
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/inventory-full.csv [get]
func (h *ExportHandler) FullCSV(c *fiber.Ctx) error {
	data, err := export.FullCSV(h.queries.FilterProducts(query.ProductFilter{}))
	if err != nil {
		return errorResponse(c, err)
	}
	return h.send(c, data, "text/csv; charset=utf-8",
		fmt.Sprintf("inventario_completo_%s.csv", h.now().Format("2006-01-02")))
}

// XLSX godoc
// @Summary      Descargar libro Excel
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {string}  string
// @Router       /api/export/inventory.xlsx [get]
func (h *ExportHandler) XLSX(c *fiber.Ctx) error {
	data, err := export.InventoryXLSX(h.queries.FilterProducts(query.ProductFilter{}))
	if err != nil {
		return errorResponse(c, err)
	}
	return h.send(c, data,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("inventario_%s.xlsx", h.now().Format("2006-01-02")))
}

// PDF godoc
// @Summary      Descargar reporte PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {string}  string
// @Router       /api/export/inventory.pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	data, err := export.SummaryPDF(
		h.queries.FilterProducts(query.ProductFilter{}),
		h.queries.QuantityByLocation(),
		h.queries.DashboardStats(),
		h.now(),
	)
	if err != nil {
		return errorResponse(c, err)
	}
	return h.send(c, data, "application/pdf",
		fmt.Sprintf("reporte_inventario_%s.pdf", h.now().Format("2006-01-02")))
}

func (h *ExportHandler) send(c *fiber.Ctx, data []byte, contentType, filename string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
