package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO tarjetas principales del panel.
type DashboardStatsDTO struct {
	TotalProducts      int             `json:"total_products"`
	ExpiringSoon       int             `json:"expiring_soon"`
	LowStock           int             `json:"low_stock"`
	MonthlyConsumption decimal.Decimal `json:"monthly_consumption"` // kg consumidos en el mes en curso
	AlertCount         int             `json:"alert_count"`
}

// ArticleGroupDTO resumen de un artículo (agrupado por descripción) para las
// tarjetas del panel: total en kg y conteo de lotes por estado.
type ArticleGroupDTO struct {
	Description   string          `json:"description"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	Vigentes      int             `json:"vigentes"`
	Proximos      int             `json:"proximos"`
	Vencidos      int             `json:"vencidos"`
}

// LocationTotalDTO kilogramos totales por ubicación, para el gráfico de
// distribución.
type LocationTotalDTO struct {
	Location string          `json:"location"`
	Quantity decimal.Decimal `json:"quantity"`
}

// MonthlyConsumptionDTO punto de la serie de consumo de los últimos 6 meses
// (mes en curso incluido), con meses sin consumo en cero.
type MonthlyConsumptionDTO struct {
	Month string          `json:"month"` // ej. "Ene 2026"
	Total decimal.Decimal `json:"total"`
}

// AlertResponse aviso vigente del panel.
type AlertResponse struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}
