package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventrack-api/internal/application/dto"
	"github.com/jhoicas/Inventrack-api/internal/application/usecase"
)

// DiscountRuleHandler maneja las peticiones HTTP para las reglas de descuento.
type DiscountRuleHandler struct {
	uc *usecase.DiscountRuleUseCase
}

// NewDiscountRuleHandler construye el handler.
func NewDiscountRuleHandler(uc *usecase.DiscountRuleUseCase) *DiscountRuleHandler {
	return &DiscountRuleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear regla de descuento
// @Tags         discount-rules
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDiscountRuleRequest  true  "Datos de la regla"
// @Success      201   {object}  dto.DiscountRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/discount-rules [post]
func (h *DiscountRuleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDiscountRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener regla de descuento por ID
// @Tags         discount-rules
// @Produce      json
// @Param        id   path  string  true  "ID de la regla"
// @Success      200  {object}  dto.DiscountRuleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/discount-rules/{id} [get]
func (h *DiscountRuleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reglas de descuento
// @Tags         discount-rules
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.DiscountRuleListResponse
// @Router       /api/discount-rules [get]
func (h *DiscountRuleHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar regla de descuento
// @Tags         discount-rules
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la regla"
// @Param        body  body  dto.UpdateDiscountRuleRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DiscountRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/discount-rules/{id} [put]
func (h *DiscountRuleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDiscountRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar regla de descuento
// @Tags         discount-rules
// @Param        id  path  string  true  "ID de la regla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/discount-rules/{id} [delete]
func (h *DiscountRuleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
