package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventrack-api/internal/application/inventory"
	"github.com/jhoicas/Inventrack-api/internal/application/notify"
	"github.com/jhoicas/Inventrack-api/internal/application/reports"
	apptransaction "github.com/jhoicas/Inventrack-api/internal/application/transaction"
	"github.com/jhoicas/Inventrack-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Inventrack-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventrack-api/internal/interfaces/http"
	"github.com/jhoicas/Inventrack-api/pkg/config"
	"github.com/jhoicas/Inventrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	ruleRepo := postgres.NewDiscountRuleRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notify.NewLogNotifier(log)
	ledger := inventory.NewStockLedger(notifier)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	ruleUC := usecase.NewDiscountRuleUseCase(ruleRepo)
	transactionUC := apptransaction.NewPostTransactionUseCase(txRunner, ledger, transactionRepo, ruleRepo)
	dashboardUC := reports.NewDashboardUseCase(reportRepo)

	// PDF: comprobante de la transacción
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := apptransaction.NewReceiptUseCase(
		transactionRepo, productRepo, customerRepo, supplierRepo, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		CustomerUC:     customerUC,
		SupplierUC:     supplierUC,
		DiscountRuleUC: ruleUC,
		TransactionUC:  transactionUC,
		ReceiptUC:      receiptUC,
		DashboardUC:    dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
