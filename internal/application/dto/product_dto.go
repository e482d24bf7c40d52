package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterProductRequest body para POST /api/products.
// ExpiryDate en formato 2006-01-02. QualityStatus por defecto "aprobado".
type RegisterProductRequest struct {
	IDH              string          `json:"idh"`
	Description      string          `json:"description"`
	Batch            string          `json:"batch"`
	Quantity         decimal.Decimal `json:"quantity"`
	ExpiryDate       string          `json:"expiry_date"`
	Location         string          `json:"location"`
	SpecificLocation string          `json:"specific_location,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	QualityStatus    string          `json:"quality_status,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID               int64           `json:"id"`
	IDH              string          `json:"idh"`
	Description      string          `json:"description"`
	Batch            string          `json:"batch"`
	Quantity         decimal.Decimal `json:"quantity"`
	ExpiryDate       string          `json:"expiry_date"`
	Location         string          `json:"location"`
	SpecificLocation string          `json:"specific_location,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	QualityStatus    string          `json:"quality_status"`
	Status           string          `json:"status"`
	DateAdded        time.Time       `json:"date_added"`
	LastModified     time.Time       `json:"last_modified"`
}

// ProductListResponse listado con el total agregado de kilogramos.
type ProductListResponse struct {
	Total         int               `json:"total"`
	TotalQuantity decimal.Decimal   `json:"total_quantity"`
	Products      []ProductResponse `json:"products"`
}
