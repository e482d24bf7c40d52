package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventaripro/internal/application/dto"
	"github.com/jhoicas/inventaripro/internal/application/inventory"
	"github.com/jhoicas/inventaripro/internal/application/query"
	"github.com/jhoicas/inventaripro/internal/domain"
	"github.com/jhoicas/inventaripro/internal/domain/entity"
)

// expiryLayout formato de la fecha de caducidad en la API.
const expiryLayout = "2006-01-02"

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	engine  *inventory.MovementEngine
	queries *query.Service
}

// NewProductHandler construye el handler.
func NewProductHandler(engine *inventory.MovementEngine, queries *query.Service) *ProductHandler {
	return &ProductHandler{engine: engine, queries: queries}
}

// Register godoc
// @Summary      Registrar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterProductRequest  true  "Datos del producto; expiry_date en formato 2006-01-02"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	expiry, err := time.Parse(expiryLayout, in.ExpiryDate)
	if err != nil {
		return errorResponse(c, fmt.Errorf("%w: fecha de caducidad inválida %q", domain.ErrValidation, in.ExpiryDate))
	}
	p, err := h.engine.Register(inventory.RegisterInput{
		IDH:              in.IDH,
		Description:      in.Description,
		Batch:            in.Batch,
		Quantity:         in.Quantity,
		ExpiryDate:       expiry,
		Location:         in.Location,
		SpecificLocation: in.SpecificLocation,
		Notes:            in.Notes,
		QualityStatus:    in.QualityStatus,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
}

// List godoc
// @Summary      Listar productos
// @Description  Filtra por texto libre (IDH, descripción o lote), ubicación
//
//	exacta y estado (vigente, proximo, vencido o stock-bajo).
//
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "Substring insensible a mayúsculas"
// @Param        location  query  string  false  "Ubicación exacta"
// @Param        status    query  string  false  "vigente | proximo | vencido | stock-bajo"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.queries.FilterProducts(query.ProductFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Status:   c.Query("status"),
	})
	out := dto.ProductListResponse{
		Total:         len(products),
		TotalQuantity: decimal.Zero,
		Products:      make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		out.TotalQuantity = out.TotalQuantity.Add(p.Quantity)
		out.Products = append(out.Products, toProductResponse(p))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Requiere confirm=true: la confirmación interactiva es
//
//	responsabilidad del cliente. Registra el movimiento terminal con la
//	cantidad restante.
//
// @Tags         products
// @Produce      json
// @Param        id       path   int     true  "ID del producto"
// @Param        confirm  query  bool    true  "Debe ser true"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "CONFIRM_REQUIRED",
			Message: "la eliminación requiere confirm=true",
		})
	}
	if _, err := h.engine.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Producto eliminado exitosamente"})
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		IDH:              p.IDH,
		Description:      p.Description,
		Batch:            p.Batch,
		Quantity:         p.Quantity,
		ExpiryDate:       p.ExpiryDate.Format(expiryLayout),
		Location:         p.Location,
		SpecificLocation: p.SpecificLocation,
		Notes:            p.Notes,
		QualityStatus:    p.QualityStatus,
		Status:           p.Status,
		DateAdded:        p.DateAdded,
		LastModified:     p.LastModified,
	}
}
