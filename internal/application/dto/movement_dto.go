package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest body para POST /api/movements/transfer y /api/movements/consume.
// SpecificDestination solo aplica a transferencias hacia ubicaciones con
// sub-ubicación (sub-área de piso o extrusora).
type MovementRequest struct {
	IDH                 string          `json:"idh"`
	Batch               string          `json:"batch"`
	Quantity            decimal.Decimal `json:"quantity"`
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	SpecificDestination string          `json:"specific_destination,omitempty"`
	Responsible         string          `json:"responsible"`
	Reason              string          `json:"reason,omitempty"`
}

// MovementResponse representación HTTP de una entrada del libro de movimientos.
type MovementResponse struct {
	ID                  string          `json:"id"`
	ProductID           int64           `json:"product_id"`
	IDH                 string          `json:"idh"`
	Description         string          `json:"description"`
	Batch               string          `json:"batch"`
	Type                string          `json:"type"`
	Quantity            decimal.Decimal `json:"quantity"`
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	SpecificDestination string          `json:"specific_destination,omitempty"`
	Responsible         string          `json:"responsible"`
	Reason              string          `json:"reason,omitempty"`
	Date                time.Time       `json:"date"`
	Timestamp           string          `json:"timestamp"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Total     int                `json:"total"`
	Movements []MovementResponse `json:"movements"`
}
