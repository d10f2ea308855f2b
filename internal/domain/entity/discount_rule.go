package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de regla de descuento.
const (
	RuleTypeQuantity         = "quantity"          // aplica si quantity >= Threshold
	RuleTypeCustomerCategory = "customer_category" // aplica si la categoría del cliente coincide
)

// IsValidRuleType valida el tipo de regla de descuento.
func IsValidRuleType(t string) bool {
	return t == RuleTypeQuantity || t == RuleTypeCustomerCategory
}

// DiscountRule define una regla de descuento activa o inactiva.
// Percent se almacena como porcentaje (15 = 15%); el evaluador lo normaliza a tasa.
type DiscountRule struct {
	ID             string
	Type           string // quantity | customer_category
	Threshold      int64  // solo reglas de cantidad
	Percent        decimal.Decimal
	TargetCategory string // solo reglas por categoría de cliente
	Active         bool
	CreatedAt      time.Time
}
