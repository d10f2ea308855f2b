package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventrack-api/internal/application/dto"
	apptransaction "github.com/jhoicas/Inventrack-api/internal/application/transaction"
)

// TransactionHandler maneja las peticiones HTTP para las transacciones de
// inventario (compras y ventas).
type TransactionHandler struct {
	uc        *apptransaction.PostTransactionUseCase
	receiptUC *apptransaction.ReceiptUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *apptransaction.PostTransactionUseCase, receiptUC *apptransaction.ReceiptUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Registrar transacción
// @Description  Registra una compra o venta y aplica el movimiento de stock de forma atómica.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Datos de la transacción"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
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
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar transacción
// @Description  Revierte el efecto original sobre el stock y aplica el nuevo como delta neto.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
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
// @Summary      Eliminar transacción
// @Description  Revierte el efecto de la transacción sobre el stock antes de borrarla.
// @Tags         transactions
// @Param        id  path  string  true  "ID de la transacción"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF
// @Tags         transactions
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/receipt [get]
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.receiptUC.Generate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="comprobante-%s.pdf"`, id))
	return c.Send(pdfBytes)
}

// PreviewDiscount godoc
// @Summary      Previsualizar descuento
// @Description  Evalúa las reglas activas sin registrar ninguna transacción.
// @Tags         discounts
// @Produce      json
// @Param        quantity           query  int     true   "Cantidad"
// @Param        customer_category  query  string  false  "Categoría del cliente"
// @Success      200  {object}  dto.DiscountPreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/discounts/preview [get]
func (h *TransactionHandler) PreviewDiscount(c *fiber.Ctx) error {
	quantity := int64(c.QueryInt("quantity", 0))
	category := c.Query("customer_category")
	out, err := h.uc.PreviewDiscount(c.Context(), quantity, category)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
