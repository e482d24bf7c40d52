package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventaripro/internal/application/dto"
	"github.com/jhoicas/inventaripro/internal/domain"
)

// errorResponse mapea un error de dominio a código HTTP y cuerpo de error.
// Todo error se recupera aquí, en la frontera de la operación; nada se
// propaga más allá del handler.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateKey),
		errors.Is(err, domain.ErrLocationMismatch),
		errors.Is(err, domain.ErrInsufficientStock):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: domain.Kind(err), Message: err.Error()})
}
