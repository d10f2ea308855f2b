// Package discount implementa el servicio de dominio de evaluación de descuentos.
package discount

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// BestPercent selecciona el mejor porcentaje de descuento aplicable entre las
// reglas dadas. Una regla de cantidad aplica si quantity >= Threshold; una regla
// por categoría aplica si TargetCategory coincide con la categoría del cliente.
// Devuelve el máximo porcentaje entre las reglas que aplican, o 0 si ninguna.
// Las reglas inactivas se ignoran. Determinista, sin efectos secundarios.
func BestPercent(quantity int64, customerCategory string, rules []entity.DiscountRule) decimal.Decimal {
	best := decimal.Zero
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		var applies bool
		switch rule.Type {
		case entity.RuleTypeQuantity:
			applies = quantity >= rule.Threshold
		case entity.RuleTypeCustomerCategory:
			applies = rule.TargetCategory != "" && rule.TargetCategory == customerCategory
		}
		if applies && rule.Percent.GreaterThan(best) {
			best = rule.Percent
		}
	}
	return best
}

// Evaluate devuelve la tasa de descuento en [0,1] para la cantidad y categoría
// de cliente dadas: el mejor porcentaje aplicable normalizado (15% -> 0.15).
// Porcentajes fuera de [0,100] se recortan al rango.
func Evaluate(quantity int64, customerCategory string, rules []entity.DiscountRule) decimal.Decimal {
	percent := BestPercent(quantity, customerCategory, rules)
	if percent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if percent.GreaterThan(hundred) {
		percent = hundred
	}
	return percent.Div(hundred)
}
