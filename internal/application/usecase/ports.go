package usecase

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReportGenerator genera el relatório de estoque en PDF.
// Lo implementa pdf.MarotoReportGenerator.
type ReportGenerator interface {
	ProductsReport(products []*entity.Product) ([]byte, error)
}
