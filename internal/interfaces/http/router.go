// Package http es el adaptador de presentación: traduce peticiones fiber a
// operaciones del motor y de la capa de consultas, y errores de dominio a
// códigos HTTP. Aquí no vive ninguna regla de inventario.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventaripro/internal/application/inventory"
	"github.com/jhoicas/inventaripro/internal/application/query"
)

// RouterDeps dependencias del router.
type RouterDeps struct {
	Engine  *inventory.MovementEngine
	Queries *query.Service
}

// Router registra todas las rutas de la API sobre la app.
func Router(app *fiber.App, deps RouterDeps) {
	products := NewProductHandler(deps.Engine, deps.Queries)
	movements := NewMovementHandler(deps.Engine, deps.Queries)
	dashboard := NewDashboardHandler(deps.Queries)
	exports := NewExportHandler(deps.Queries)

	api := app.Group("/api")

	pr := api.Group("/products")
	pr.Post("/", products.Register)
	pr.Get("/", products.List)
	pr.Delete("/:id", products.Delete)

	mv := api.Group("/movements")
	mv.Post("/transfer", movements.Transfer)
	mv.Post("/consume", movements.Consume)
	mv.Get("/", movements.List)

	db := api.Group("/dashboard")
	db.Get("/stats", dashboard.Stats)
	db.Get("/articles", dashboard.Articles)
	db.Get("/locations", dashboard.Locations)
	db.Get("/consumption-trend", dashboard.ConsumptionTrend)

	api.Get("/alerts", dashboard.Alerts)

	ex := api.Group("/export")
	ex.Get("/inventory.csv", exports.SummaryCSV)
	ex.Get("/inventory-full.csv", exports.FullCSV)
	ex.Get("/inventory.xlsx", exports.XLSX)
	ex.Get("/inventory.pdf", exports.PDF)
}
