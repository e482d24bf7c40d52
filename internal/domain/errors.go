package domain

import "errors"

// Errores de dominio (sin dependencias externas). Las operaciones los
// envuelven con fmt.Errorf("%w: ...") para agregar el detalle legible
// (ubicación actual, stock disponible, etc.).
var (
	ErrDuplicateKey      = errors.New("ya existe un producto con el mismo IDH y lote")
	ErrValidation        = errors.New("entrada inválida")
	ErrNotFound          = errors.New("producto no encontrado")
	ErrLocationMismatch  = errors.New("el producto no se encuentra en la ubicación de origen")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("error al persistir el estado")
)

// Kind clasifica un error para los colaboradores de presentación
// (código HTTP, notificaciones).
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateKey):
		return "DUPLICATE_KEY"
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrLocationMismatch):
		return "LOCATION_MISMATCH"
	case errors.Is(err, ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, ErrStorage):
		return "STORAGE"
	}
	return "INTERNAL"
}
