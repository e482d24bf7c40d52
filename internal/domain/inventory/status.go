// Package inventory contiene las reglas puras de dominio del inventario.
package inventory

import (
	"math"
	"time"

	"github.com/jhoicas/inventaripro/internal/domain/entity"
)

// ExpiryWarningDays ventana fija de aviso: un producto que vence dentro de
// estos días pasa a "proximo".
const ExpiryWarningDays = 7

// EvaluateStatus deriva el estado de ciclo de vida a partir de la fecha de
// caducidad y la fecha de referencia. Función pura; debe reevaluarse en cada
// lectura del inventario, nunca cachearse a través de un cambio de día.
//
// daysDiff = ceil((caducidad - referencia) / 24h):
//
//	daysDiff < 0  → vencido
//	daysDiff <= 7 → proximo
//	resto         → vigente
func EvaluateStatus(expiry, asOf time.Time) string {
	daysDiff := math.Ceil(expiry.Sub(asOf).Hours() / 24)
	switch {
	case daysDiff < 0:
		return entity.StatusVencido
	case daysDiff <= ExpiryWarningDays:
		return entity.StatusProximo
	default:
		return entity.StatusVigente
	}
}
