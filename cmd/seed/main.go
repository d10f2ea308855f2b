// seed puebla la base de datos con datos de demostración: productos,
// clientes, proveedores y reglas de descuento.
//
// Uso: go run ./cmd/seed
// Requiere la misma configuración de BD que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventrack-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()

	productRepo := postgres.NewProductRepository(pool)
	products := []*entity.Product{
		{SKU: "LAP-001", Name: "Laptop Lenovo ThinkPad", Category: "tecnología", Price: decimal.NewFromInt(3200000), Stock: 15, LowStockThreshold: 5},
		{SKU: "MOU-001", Name: "Mouse Logitech MX", Category: "tecnología", Price: decimal.NewFromInt(180000), Stock: 40, LowStockThreshold: 10},
		{SKU: "ESC-001", Name: "Escritorio en roble", Category: "muebles", Price: decimal.NewFromInt(950000), Stock: 8, LowStockThreshold: 3},
		{SKU: "SIL-001", Name: "Silla ergonómica", Category: "muebles", Price: decimal.NewFromInt(640000), Stock: 12, LowStockThreshold: 4},
		{SKU: "CAF-001", Name: "Café de origen 500g", Category: "alimentos", Price: decimal.NewFromInt(38000), Stock: 60, LowStockThreshold: 20},
	}
	for _, p := range products {
		p.ID = uuid.New().String()
		p.CreatedAt, p.UpdatedAt = now, now
		if err := productRepo.Create(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "insertar producto %s: %v\n", p.SKU, err)
			os.Exit(1)
		}
		fmt.Printf("producto %s (%s) creado\n", p.SKU, p.Name)
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	customers := []*entity.Customer{
		{Name: "Comercial Andina SAS", Category: "vip", Email: "compras@andina.co", Phone: "3001112233"},
		{Name: "Distribuciones El Puerto", Category: "premium", Email: "pedidos@elpuerto.co", Phone: "3014445566"},
		{Name: "María Fernanda López", Category: "regular", Email: "mafe.lopez@mail.com", Phone: "3027778899"},
	}
	for _, c := range customers {
		c.ID = uuid.New().String()
		c.CreatedAt, c.UpdatedAt = now, now
		if err := customerRepo.Create(ctx, c); err != nil {
			fmt.Fprintf(os.Stderr, "insertar cliente %s: %v\n", c.Name, err)
			os.Exit(1)
		}
		fmt.Printf("cliente %s creado\n", c.Name)
	}

	supplierRepo := postgres.NewSupplierRepository(pool)
	suppliers := []*entity.Supplier{
		{Name: "Importadora TecnoGlobal", Email: "ventas@tecnoglobal.co", Phone: "6015550101"},
		{Name: "Maderas del Norte", Email: "contacto@maderasnorte.co", Phone: "6045550202"},
	}
	for _, s := range suppliers {
		s.ID = uuid.New().String()
		s.CreatedAt, s.UpdatedAt = now, now
		if err := supplierRepo.Create(ctx, s); err != nil {
			fmt.Fprintf(os.Stderr, "insertar proveedor %s: %v\n", s.Name, err)
			os.Exit(1)
		}
		fmt.Printf("proveedor %s creado\n", s.Name)
	}

	ruleRepo := postgres.NewDiscountRuleRepository(pool)
	rules := []*entity.DiscountRule{
		{Type: entity.RuleTypeQuantity, Threshold: 10, Percent: decimal.NewFromInt(5), Active: true},
		{Type: entity.RuleTypeQuantity, Threshold: 50, Percent: decimal.NewFromInt(10), Active: true},
		{Type: entity.RuleTypeCustomerCategory, TargetCategory: "premium", Percent: decimal.NewFromInt(8), Active: true},
		{Type: entity.RuleTypeCustomerCategory, TargetCategory: "vip", Percent: decimal.NewFromInt(15), Active: true},
	}
	for _, r := range rules {
		r.ID = uuid.New().String()
		r.CreatedAt = now
		if err := ruleRepo.Create(ctx, r); err != nil {
			fmt.Fprintf(os.Stderr, "insertar regla %s: %v\n", r.Type, err)
			os.Exit(1)
		}
		fmt.Printf("regla %s (%s%%) creada\n", r.Type, r.Percent.String())
	}

	fmt.Println("datos de demostración cargados")
}
