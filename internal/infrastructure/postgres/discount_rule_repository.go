package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

var _ repository.DiscountRuleRepository = (*DiscountRuleRepo)(nil)

const ruleColumns = `id, type, threshold, percent, target_category, active, created_at`

// DiscountRuleRepo implementación de DiscountRuleRepository sobre PostgreSQL
// (usable con pool o tx).
type DiscountRuleRepo struct {
	q Querier
}

// NewDiscountRuleRepository construye el adaptador de reglas de descuento.
func NewDiscountRuleRepository(q Querier) *DiscountRuleRepo {
	return &DiscountRuleRepo{q: q}
}

// Create persiste una nueva regla.
func (r *DiscountRuleRepo) Create(ctx context.Context, rule *entity.DiscountRule) error {
	query := `
		INSERT INTO discount_rules (id, type, threshold, percent, target_category, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rule.ID, rule.Type, rule.Threshold, rule.Percent, rule.TargetCategory,
		rule.Active, rule.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert discount rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *DiscountRuleRepo) GetByID(ctx context.Context, id string) (*entity.DiscountRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM discount_rules WHERE id = $1`
	var rule entity.DiscountRule
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rule.ID, &rule.Type, &rule.Threshold, &rule.Percent, &rule.TargetCategory,
		&rule.Active, &rule.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount rule: %w", err)
	}
	return &rule, nil
}

// ListActive devuelve todas las reglas activas (entrada del evaluador).
func (r *DiscountRuleRepo) ListActive(ctx context.Context) ([]entity.DiscountRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM discount_rules WHERE active ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active discount rules: %w", err)
	}
	defer rows.Close()
	var list []entity.DiscountRule
	for rows.Next() {
		var rule entity.DiscountRule
		if err := rows.Scan(&rule.ID, &rule.Type, &rule.Threshold, &rule.Percent,
			&rule.TargetCategory, &rule.Active, &rule.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan discount rule: %w", err)
		}
		list = append(list, rule)
	}
	return list, rows.Err()
}

// List lista reglas con paginación.
func (r *DiscountRuleRepo) List(ctx context.Context, limit, offset int) ([]*entity.DiscountRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM discount_rules ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list discount rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.DiscountRule
	for rows.Next() {
		var rule entity.DiscountRule
		if err := rows.Scan(&rule.ID, &rule.Type, &rule.Threshold, &rule.Percent,
			&rule.TargetCategory, &rule.Active, &rule.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan discount rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Update actualiza una regla existente.
func (r *DiscountRuleRepo) Update(ctx context.Context, rule *entity.DiscountRule) error {
	query := `
		UPDATE discount_rules
		SET threshold = $2, percent = $3, target_category = $4, active = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		rule.ID, rule.Threshold, rule.Percent, rule.TargetCategory, rule.Active,
	)
	if err != nil {
		return fmt.Errorf("update discount rule: %w", err)
	}
	return nil
}

// Delete elimina una regla por ID.
func (r *DiscountRuleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM discount_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete discount rule: %w", err)
	}
	return nil
}
