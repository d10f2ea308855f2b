package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDiscountRuleRequest entrada para crear una regla de descuento.
type CreateDiscountRuleRequest struct {
	Type           string          `json:"type"` // quantity | customer_category
	Threshold      int64           `json:"threshold"`
	Percent        decimal.Decimal `json:"percent"`
	TargetCategory string          `json:"target_category"`
	Active         *bool           `json:"active"` // default true
}

// UpdateDiscountRuleRequest entrada para actualizar una regla.
type UpdateDiscountRuleRequest struct {
	Threshold      *int64           `json:"threshold"`
	Percent        *decimal.Decimal `json:"percent"`
	TargetCategory *string          `json:"target_category"`
	Active         *bool            `json:"active"`
}

// DiscountRuleResponse salida de una regla de descuento.
type DiscountRuleResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Threshold      int64           `json:"threshold,omitempty"`
	Percent        decimal.Decimal `json:"percent"`
	TargetCategory string          `json:"target_category,omitempty"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DiscountRuleListResponse lista paginada de reglas.
type DiscountRuleListResponse struct {
	Items []DiscountRuleResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
