package transaction

import (
	"context"

	"github.com/jhoicas/Inventrack-api/internal/domain"
	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	"github.com/jhoicas/Inventrack-api/internal/domain/repository"
)

// ReceiptUseCase arma los datos de una transacción y genera su comprobante PDF.
type ReceiptUseCase struct {
	txRepo       repository.TransactionRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRepo:       txRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		generator:    generator,
	}
}

// Generate devuelve los bytes del comprobante PDF de la transacción indicada.
// El tercero (cliente o proveedor) es opcional: si la referencia ya no existe
// el comprobante se genera sin esa sección.
func (uc *ReceiptUseCase) Generate(ctx context.Context, transactionID string) ([]byte, error) {
	tx, err := uc.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, tx.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var customer *entity.Customer
	if tx.CustomerID != nil {
		customer, _ = uc.customerRepo.GetByID(ctx, *tx.CustomerID)
	}
	var supplier *entity.Supplier
	if tx.SupplierID != nil {
		supplier, _ = uc.supplierRepo.GetByID(ctx, *tx.SupplierID)
	}

	return uc.generator.GenerateReceiptPDF(ctx, tx, product, customer, supplier)
}
