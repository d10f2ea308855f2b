// Package transaction implementa el Transaction Poster: contabilización,
// modificación y reversa de compras y ventas con ajuste atómico de stock.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventrack-api/internal/application/dto"
	"github.com/jhoicas/Inventrack-api/internal/application/inventory"
	"github.com/jhoicas/Inventrack-api/internal/domain"
	"github.com/jhoicas/Inventrack-api/internal/domain/discount"
	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

// PostTransactionUseCase orquesta validación, pricing, descuento, ledger de
// stock y persistencia de una transacción. Toda mutación corre dentro del
// TxRunner con bloqueo de fila sobre el producto (SELECT FOR UPDATE), así dos
// posts concurrentes sobre el mismo producto no pueden aprobar el mismo stock.
type PostTransactionUseCase struct {
	txRunner TxRunner
	ledger   *inventory.StockLedger
	txRepo   repository.TransactionRepository
	ruleRepo repository.DiscountRuleRepository
}

// NewPostTransactionUseCase construye el caso de uso.
func NewPostTransactionUseCase(
	txRunner TxRunner,
	ledger *inventory.StockLedger,
	txRepo repository.TransactionRepository,
	ruleRepo repository.DiscountRuleRepository,
) *PostTransactionUseCase {
	return &PostTransactionUseCase{
		txRunner: txRunner,
		ledger:   ledger,
		txRepo:   txRepo,
		ruleRepo: ruleRepo,
	}
}

// Create contabiliza una nueva transacción:
//
//  1. Valida campos requeridos, cantidad y tipo.
//  2. Rechaza códigos duplicados (ErrConflict).
//  3. Toma el precio actual del producto como snapshot.
//  4. Para ventas con cliente, evalúa la tasa de descuento; si el cliente no
//     existe o la consulta falla, el descuento es 0.
//  5. Aplica el delta de stock vía ledger; stock insuficiente aborta todo.
//  6. Persiste fila de transacción y nuevo stock en una sola transacción SQL.
func (uc *PostTransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	posted := &entity.Transaction{
		ID:         uuid.New().String(),
		Code:       in.Code,
		ProductID:  in.ProductID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		CustomerID: normalizeRef(in.CustomerID),
		SupplierID: normalizeRef(in.SupplierID),
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		ruleRepo repository.DiscountRuleRepository,
	) error {
		existing, err := txRepo.GetByCode(ctx, in.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrConflict
		}

		product, err := productRepo.GetByIDForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		posted.UnitPrice = product.Price
		posted.DiscountRate = uc.resolveDiscount(ctx, customerRepo, ruleRepo, posted)

		base := posted.UnitPrice.Mul(decimal.NewFromInt(posted.Quantity))
		posted.TotalAmount = base.Sub(base.Mul(posted.DiscountRate))

		if _, err := uc.ledger.Apply(ctx, productRepo, product, posted.StockDelta(), now); err != nil {
			return err
		}
		return txRepo.Create(ctx, posted)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(posted), nil
}

// resolveDiscount evalúa la tasa de descuento para una venta con cliente.
// Cualquier fallo de lectura degrada a descuento 0: la venta no se bloquea
// por no poder calcular un descuento.
func (uc *PostTransactionUseCase) resolveDiscount(
	ctx context.Context,
	customerRepo repository.CustomerRepository,
	ruleRepo repository.DiscountRuleRepository,
	tx *entity.Transaction,
) decimal.Decimal {
	if tx.Type != entity.TransactionTypeSale || tx.CustomerID == nil {
		return decimal.Zero
	}
	customer, err := customerRepo.GetByID(ctx, *tx.CustomerID)
	if err != nil || customer == nil {
		return decimal.Zero
	}
	rules, err := ruleRepo.ListActive(ctx)
	if err != nil {
		return decimal.Zero
	}
	return discount.Evaluate(tx.Quantity, customer.Category, rules)
}

// Update modifica una transacción contabilizada. El stock se ajusta con el
// delta neto reversa-más-reaplicación, de modo que nunca queda un estado
// intermedio persistido. El precio unitario y el total se recalculan con el
// precio vigente del producto y la nueva cantidad; la tasa de descuento
// almacenada se reaplica tal cual, sin volver a evaluar reglas.
func (uc *PostTransactionUseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != nil && !entity.IsValidTransactionType(*in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var updated *entity.Transaction

	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
		_ repository.CustomerRepository,
		_ repository.DiscountRuleRepository,
	) error {
		tx, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByIDForUpdate(ctx, tx.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newType := tx.Type
		if in.Type != nil {
			newType = *in.Type
		}
		newQty := tx.Quantity
		if in.Quantity != nil {
			newQty = *in.Quantity
		}

		// Delta neto: revertir la transacción original y aplicar la nueva.
		net := tx.ReversalDelta() + entity.StockDeltaFor(newType, newQty)
		if _, err := uc.ledger.Apply(ctx, productRepo, product, net, now); err != nil {
			return err
		}

		tx.Type = newType
		tx.Quantity = newQty
		tx.UnitPrice = product.Price
		base := tx.UnitPrice.Mul(decimal.NewFromInt(newQty))
		tx.TotalAmount = base.Sub(base.Mul(tx.DiscountRate))
		if in.Notes != nil {
			tx.Notes = *in.Notes
		}
		tx.UpdatedAt = now

		if err := txRepo.Update(ctx, tx); err != nil {
			return err
		}
		updated = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(updated), nil
}

// Delete revierte y elimina una transacción. Si deshacer el delta dejaría el
// stock negativo (ej. borrar una compra ya consumida), la eliminación se
// rechaza con ErrInsufficientStock: la seguridad del stock manda.
func (uc *PostTransactionUseCase) Delete(ctx context.Context, id string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
		_ repository.CustomerRepository,
		_ repository.DiscountRuleRepository,
	) error {
		tx, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByIDForUpdate(ctx, tx.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if _, err := uc.ledger.Apply(ctx, productRepo, product, tx.ReversalDelta(), now); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	})
}

// PreviewDiscount evalúa la tasa de descuento para una cantidad y categoría de
// cliente sin contabilizar nada (lectura pura).
func (uc *PostTransactionUseCase) PreviewDiscount(ctx context.Context, quantity int64, customerCategory string) (*dto.DiscountPreviewResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DiscountPreviewResponse{
		Quantity:         quantity,
		CustomerCategory: customerCategory,
		DiscountRate:     discount.Evaluate(quantity, customerCategory, rules),
		DiscountPercent:  discount.BestPercent(quantity, customerCategory, rules),
	}, nil
}

// GetByID obtiene una transacción contabilizada.
func (uc *PostTransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(tx), nil
}

// List lista transacciones con paginación.
func (uc *PostTransactionUseCase) List(ctx context.Context, limit, offset int) (*dto.TransactionListResponse, error) {
	list, err := uc.txRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func validateCreate(in dto.CreateTransactionRequest) error {
	if in.Code == "" || in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if !entity.IsValidTransactionType(in.Type) {
		return domain.ErrInvalidInput
	}
	// Referencias cruzadas: cliente solo en ventas, proveedor solo en compras.
	if in.Type == entity.TransactionTypeSale && normalizeRef(in.SupplierID) != nil {
		return domain.ErrInvalidInput
	}
	if in.Type == entity.TransactionTypePurchase && normalizeRef(in.CustomerID) != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func normalizeRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:           tx.ID,
		Code:         tx.Code,
		ProductID:    tx.ProductID,
		Type:         tx.Type,
		Quantity:     tx.Quantity,
		CustomerID:   tx.CustomerID,
		SupplierID:   tx.SupplierID,
		UnitPrice:    tx.UnitPrice,
		DiscountRate: tx.DiscountRate,
		TotalAmount:  tx.TotalAmount,
		Notes:        tx.Notes,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}
