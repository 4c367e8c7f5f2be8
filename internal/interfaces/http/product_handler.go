package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manage/internal/application/dto"
	"github.com/jhoicas/inventory-manage/internal/application/usecase"
	"github.com/jhoicas/inventory-manage/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  domain.FieldErrors
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := decodeBody(c, &in); err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrs)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrs)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos (paginado, 10 por página)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Número de página"  default(1)
// @Success      200   {object}  dto.ProductListResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	out, err := h.uc.List(c.Context(), page, c.BaseURL()+"/products")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Actualizar cantidad de un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        pk    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateQuantityRequest  true  "quantity"
// @Success      200   {object}  dto.UpdateQuantityResponse
// @Failure      400   {object}  domain.FieldErrors
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products/{pk} [put]
func (h *ProductHandler) UpdateQuantity(c *fiber.Ctx) error {
	pk, err := c.ParamsInt("pk")
	if err != nil {
		// pk no numérico: no puede referenciar ningún producto
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product not found"})
	}
	var in dto.UpdateQuantityRequest
	if err := decodeBody(c, &in); err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrs)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateQuantity(c.Context(), int64(pk), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product not found"})
		}
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrs)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
