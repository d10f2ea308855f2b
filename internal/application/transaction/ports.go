package transaction

import (
	"context"

	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la fila de transacción y el
// stock del producto se persistan como unidad atómica: ambos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		ruleRepo repository.DiscountRuleRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de una transacción.
// customer o supplier pueden ser nil según el tipo de transacción.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		tx *entity.Transaction,
		product *entity.Product,
		customer *entity.Customer,
		supplier *entity.Supplier,
	) ([]byte, error)
}
