package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventrack-api/internal/domain"
	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, code, product_id, type, quantity, customer_id, supplier_id,
	unit_price, discount_rate, total_amount, notes, created_at, updated_at`

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de transacciones. Pasar pool
// o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una nueva transacción. Un código duplicado (constraint
// único sobre code) se reporta como domain.ErrConflict.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, code, product_id, type, quantity, customer_id, supplier_id,
			unit_price, discount_rate, total_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.Code, tx.ProductID, tx.Type, tx.Quantity, tx.CustomerID, tx.SupplierID,
		tx.UnitPrice, tx.DiscountRate, tx.TotalAmount, tx.Notes, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByCode obtiene una transacción por su código de negocio.
func (r *TransactionRepo) GetByCode(ctx context.Context, code string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE code = $1`
	return r.scanOne(ctx, query, code)
}

func (r *TransactionRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&t.ID, &t.Code, &t.ProductID, &t.Type, &t.Quantity, &t.CustomerID, &t.SupplierID,
		&t.UnitPrice, &t.DiscountRate, &t.TotalAmount, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Update actualiza los campos mutables de una transacción.
func (r *TransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $2, quantity = $3, unit_price = $4, discount_rate = $5,
			total_amount = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.Type, tx.Quantity, tx.UnitPrice, tx.DiscountRate,
		tx.TotalAmount, tx.Notes, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// List lista transacciones con paginación (más recientes primero).
func (r *TransactionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Code, &t.ProductID, &t.Type, &t.Quantity, &t.CustomerID,
			&t.SupplierID, &t.UnitPrice, &t.DiscountRate, &t.TotalAmount, &t.Notes,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
