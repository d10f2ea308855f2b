package repository

import (
	"context"

	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
)

// DiscountRuleRepository define el puerto de persistencia para reglas de descuento.
// ListActive alimenta al evaluador de descuentos (lectura pura).
type DiscountRuleRepository interface {
	Create(ctx context.Context, rule *entity.DiscountRule) error
	GetByID(ctx context.Context, id string) (*entity.DiscountRule, error)
	ListActive(ctx context.Context) ([]entity.DiscountRule, error)
	List(ctx context.Context, limit, offset int) ([]*entity.DiscountRule, error)
	Update(ctx context.Context, rule *entity.DiscountRule) error
	Delete(ctx context.Context, id string) error
}
