package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ciclo de vida, derivados de la fecha de caducidad.
// Nunca son autoritativos: se recalculan antes de cada lectura que dependa
// de ellos (ver inventory.EvaluateStatus).
const (
	StatusVigente = "vigente"
	StatusProximo = "proximo" // vence dentro de la ventana de aviso
	StatusVencido = "vencido"
)

// Estados de calidad (independientes del ciclo de vida).
const (
	QualityAprobado   = "aprobado"
	QualityBloqueado  = "bloqueado"
	QualityCuarentena = "cuarentena"
	QualityRechazado  = "rechazado"
)

// Ubicaciones que llevan sub-ubicación: sub-área de piso o extrusora.
// El conjunto de ubicaciones es abierto (texto libre no vacío); solo estas
// dos tienen semántica adicional.
const (
	LocationPrimerPiso = "Primer Piso"
	LocationProduccion = "Producción"
)

// Product representa un lote físico de material en planta, identificado de
// forma única por el par (IDH, Lote). La cantidad es en kilogramos y nunca
// negativa. ID son los milisegundos unix del momento de alta.
type Product struct {
	ID               int64           `json:"id"`
	IDH              string          `json:"idh"`
	Description      string          `json:"description"`
	Batch            string          `json:"batch"`
	Quantity         decimal.Decimal `json:"quantity"`
	ExpiryDate       time.Time       `json:"expiryDate"`
	Location         string          `json:"location"`
	SpecificLocation string          `json:"specificLocation"` // sub-área de piso o extrusora
	Notes            string          `json:"notes"`
	QualityStatus    string          `json:"qualityStatus"`
	Status           string          `json:"status"`
	DateAdded        time.Time       `json:"dateAdded"`
	LastModified     time.Time       `json:"lastModified"`
}

// HasSpecificLocation indica si una ubicación requiere sub-ubicación.
func HasSpecificLocation(location string) bool {
	return location == LocationPrimerPiso || location == LocationProduccion
}

// ValidQualityStatus valida el enum cerrado de estados de calidad.
func ValidQualityStatus(s string) bool {
	switch s {
	case QualityAprobado, QualityBloqueado, QualityCuarentena, QualityRechazado:
		return true
	}
	return false
}

// QualityStatusText texto de presentación del estado de calidad.
func QualityStatusText(s string) string {
	switch s {
	case QualityAprobado:
		return "Aprobado"
	case QualityBloqueado:
		return "Bloqueado - No pasa calidad"
	case QualityCuarentena:
		return "En Cuarentena"
	case QualityRechazado:
		return "Rechazado"
	}
	return s
}

// StatusText texto de presentación del estado de ciclo de vida.
func StatusText(s string) string {
	switch s {
	case StatusVigente:
		return "Vigente"
	case StatusProximo:
		return "Próximo a vencer"
	case StatusVencido:
		return "Vencido"
	}
	return s
}
