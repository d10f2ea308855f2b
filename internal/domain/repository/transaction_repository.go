package repository

import (
	"context"

	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para transacciones.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	GetByCode(ctx context.Context, code string) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error)
}
