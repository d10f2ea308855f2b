package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventrack-api/internal/application/dto"
	"github.com/jhoicas/Inventrack-api/internal/domain"
	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

var maxPercent = decimal.NewFromInt(100)

// DiscountRuleUseCase casos de uso CRUD para reglas de descuento.
type DiscountRuleUseCase struct {
	repo repository.DiscountRuleRepository
}

// NewDiscountRuleUseCase construye el caso de uso.
func NewDiscountRuleUseCase(repo repository.DiscountRuleRepository) *DiscountRuleUseCase {
	return &DiscountRuleUseCase{repo: repo}
}

// Create crea una regla de descuento.
func (uc *DiscountRuleUseCase) Create(ctx context.Context, in dto.CreateDiscountRuleRequest) (*dto.DiscountRuleResponse, error) {
	if !entity.IsValidRuleType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Percent.IsNegative() || in.Percent.GreaterThan(maxPercent) {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.RuleTypeQuantity:
		if in.Threshold <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.RuleTypeCustomerCategory:
		if !entity.IsValidCustomerCategory(in.TargetCategory) {
			return nil, domain.ErrInvalidInput
		}
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	rule := &entity.DiscountRule{
		ID:             uuid.New().String(),
		Type:           in.Type,
		Threshold:      in.Threshold,
		Percent:        in.Percent,
		TargetCategory: in.TargetCategory,
		Active:         active,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return toDiscountRuleResponse(rule), nil
}

// GetByID obtiene una regla por ID.
func (uc *DiscountRuleUseCase) GetByID(ctx context.Context, id string) (*dto.DiscountRuleResponse, error) {
	rule, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	return toDiscountRuleResponse(rule), nil
}

// Update actualiza una regla. El tipo no es modificable.
func (uc *DiscountRuleUseCase) Update(ctx context.Context, id string, in dto.UpdateDiscountRuleRequest) (*dto.DiscountRuleResponse, error) {
	rule, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	if in.Threshold != nil {
		if rule.Type == entity.RuleTypeQuantity && *in.Threshold <= 0 {
			return nil, domain.ErrInvalidInput
		}
		rule.Threshold = *in.Threshold
	}
	if in.Percent != nil {
		if in.Percent.IsNegative() || in.Percent.GreaterThan(maxPercent) {
			return nil, domain.ErrInvalidInput
		}
		rule.Percent = *in.Percent
	}
	if in.TargetCategory != nil {
		if rule.Type == entity.RuleTypeCustomerCategory && !entity.IsValidCustomerCategory(*in.TargetCategory) {
			return nil, domain.ErrInvalidInput
		}
		rule.TargetCategory = *in.TargetCategory
	}
	if in.Active != nil {
		rule.Active = *in.Active
	}
	if err := uc.repo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return toDiscountRuleResponse(rule), nil
}

// List lista reglas con paginación.
func (uc *DiscountRuleUseCase) List(ctx context.Context, limit, offset int) (*dto.DiscountRuleListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DiscountRuleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toDiscountRuleResponse(r))
	}
	return &dto.DiscountRuleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una regla por ID.
func (uc *DiscountRuleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toDiscountRuleResponse(r *entity.DiscountRule) *dto.DiscountRuleResponse {
	return &dto.DiscountRuleResponse{
		ID:             r.ID,
		Type:           r.Type,
		Threshold:      r.Threshold,
		Percent:        r.Percent,
		TargetCategory: r.TargetCategory,
		Active:         r.Active,
		CreatedAt:      r.CreatedAt,
	}
}
