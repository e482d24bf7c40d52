package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventaripro/internal/application/dto"
	"github.com/jhoicas/inventaripro/internal/application/inventory"
	"github.com/jhoicas/inventaripro/internal/application/query"
	"github.com/jhoicas/inventaripro/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP de movimientos de stock.
type MovementHandler struct {
	engine  *inventory.MovementEngine
	queries *query.Service
}

// NewMovementHandler construye el handler.
func NewMovementHandler(engine *inventory.MovementEngine, queries *query.Service) *MovementHandler {
	return &MovementHandler{engine: engine, queries: queries}
}

// Transfer godoc
// @Summary      Transferir producto entre ubicaciones
// @Description  El origen declarado debe coincidir con la ubicación actual
//
//	del producto. No modifica la cantidad.
//
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "idh, batch, quantity, origin, destination, responsible; specific_destination si el destino lleva sub-ubicación"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/transfer [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	in, err := parseMovementBody(c)
	if err != nil {
		return err
	}
	if err := h.engine.Transfer(in); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Transferencia registrada exitosamente"})
}

// Consume godoc
// @Summary      Registrar consumo de stock
// @Description  Descuenta la cantidad del producto de forma irreversible.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "idh, batch, quantity, origin, destination, responsible"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/consume [post]
func (h *MovementHandler) Consume(c *fiber.Ctx) error {
	in, err := parseMovementBody(c)
	if err != nil {
		return err
	}
	if err := h.engine.Consume(in); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Consumo registrado exitosamente"})
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        date         query  string  false  "Fecha de calendario (2006-01-02)"
// @Param        description  query  string  false  "Descripción exacta del producto"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movements := h.queries.FilterMovements(query.MovementFilter{
		Date:        c.Query("date"),
		Description: c.Query("description"),
	})
	out := dto.MovementListResponse{
		Total:     len(movements),
		Movements: make([]dto.MovementResponse, 0, len(movements)),
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, toMovementResponse(m))
	}
	return c.JSON(out)
}

func parseMovementBody(c *fiber.Ctx) (inventory.MovementInput, error) {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return inventory.MovementInput{}, c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return inventory.MovementInput{
		IDH:                 in.IDH,
		Batch:               in.Batch,
		Quantity:            in.Quantity,
		Origin:              in.Origin,
		Destination:         in.Destination,
		SpecificDestination: in.SpecificDestination,
		Responsible:         in.Responsible,
		Reason:              in.Reason,
	}, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                  m.ID,
		ProductID:           m.ProductID,
		IDH:                 m.IDH,
		Description:         m.Description,
		Batch:               m.Batch,
		Type:                m.Type,
		Quantity:            m.Quantity,
		Origin:              m.Origin,
		Destination:         m.Destination,
		SpecificDestination: m.SpecificDestination,
		Responsible:         m.Responsible,
		Reason:              m.Reason,
		Date:                m.Date,
		Timestamp:           m.Timestamp,
	}
}
