package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventrack-api/internal/application/reports"
	apptransaction "github.com/jhoicas/Inventrack-api/internal/application/transaction"
	"github.com/jhoicas/Inventrack-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	CustomerUC     *usecase.CustomerUseCase
	SupplierUC     *usecase.SupplierUseCase
	DiscountRuleUC *usecase.DiscountRuleUseCase
	TransactionUC  *apptransaction.PostTransactionUseCase
	ReceiptUC      *apptransaction.ReceiptUseCase
	DashboardUC    *reports.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Discount rules
	rules := api.Group("/discount-rules")
	ruleHandler := NewDiscountRuleHandler(deps.DiscountRuleUC)
	rules.Post("/", ruleHandler.Create)
	rules.Get("/", ruleHandler.List)
	rules.Get("/:id", ruleHandler.GetByID)
	rules.Put("/:id", ruleHandler.Update)
	rules.Delete("/:id", ruleHandler.Delete)

	// Transactions
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.ReceiptUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)
	transactions.Get("/:id/receipt", transactionHandler.Receipt)

	// Discount preview (no registra nada)
	api.Get("/discounts/preview", transactionHandler.PreviewDiscount)

	// Reports
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC)
	reportsGroup.Get("/dashboard", reportHandler.GetDashboard)
	reportsGroup.Get("/monthly-sales", reportHandler.GetMonthlySales)
	reportsGroup.Get("/category-sales", reportHandler.GetCategorySales)
	reportsGroup.Get("/top-products", reportHandler.GetTopProducts)
}
