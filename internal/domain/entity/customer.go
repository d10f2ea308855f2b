package entity

import "time"

// Categorías de cliente: determinan la elegibilidad de descuento por categoría.
const (
	CustomerCategoryRegular = "regular"
	CustomerCategoryPremium = "premium"
	CustomerCategoryVIP     = "vip"
)

// IsValidCustomerCategory valida la categoría de cliente.
func IsValidCustomerCategory(c string) bool {
	return c == CustomerCategoryRegular || c == CustomerCategoryPremium || c == CustomerCategoryVIP
}

// Customer representa un cliente (ventas).
type Customer struct {
	ID        string
	Name      string
	Category  string // regular | premium | vip
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
