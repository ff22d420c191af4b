package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/slooze/commodity-admin/internal/application/dto"
	"github.com/slooze/commodity-admin/internal/application/usecase"
	"github.com/slooze/commodity-admin/internal/domain"
)

// ProductHandler maneja el listado y el alta de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos guardados y categorías del formulario
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Create godoc
// @Summary      Guardar un borrador de producto (solo manager)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, category, price"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Discard godoc
// @Summary      Descartar el borrador actual (solo manager)
// @Tags         products
// @Produce      json
// @Success      204
// @Router       /api/products/discard [post]
func (h *ProductHandler) Discard(c *fiber.Ctx) error {
	h.uc.Discard()
	return c.SendStatus(fiber.StatusNoContent)
}
