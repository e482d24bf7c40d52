package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de auditoría.
const (
	MovementRegistroInicial = "registro_inicial"
	MovementTransferencia   = "transferencia"
	MovementConsumo         = "consumo"
	MovementEliminacion     = "eliminacion"
)

// Valores sentinela del libro.
const (
	OriginNA           = "N/A"       // origen de un registro inicial
	DestinationRemoved = "Eliminado" // destino de una eliminación
)

// TimestampLayout formato de presentación de la fecha de un movimiento.
const TimestampLayout = "02/01/2006 15:04:05"

// Movement es el registro inmutable de auditoría de un cambio de estado de un
// Product. Referencia al producto por ID (referencia débil: el movimiento
// sobrevive a la eliminación del producto). Una vez creado nunca se edita ni
// se borra.
//
// Quantity es la magnitud movida, siempre > 0; para una eliminación registra
// la cantidad restante al momento del borrado.
type Movement struct {
	ID                  string          `json:"id"`
	ProductID           int64           `json:"productId"`
	IDH                 string          `json:"idh"`
	Description         string          `json:"description"`
	Batch               string          `json:"batch"`
	Type                string          `json:"type"`
	Quantity            decimal.Decimal `json:"quantity"`
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	SpecificDestination string          `json:"specificDestination"`
	Responsible         string          `json:"responsible"`
	Reason              string          `json:"reason"`
	Date                time.Time       `json:"date"`
	Timestamp           string          `json:"timestamp"` // Date formateada para vistas
}
