package usecase

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos más el relatório de estoque.
// El create corre bajo una transacción: la verificación de existencia de
// categoría y fornecedor y el INSERT ven el mismo snapshot.
type ProductUseCase struct {
	repo      repository.ProductRepository
	txRunner  TxRunner
	reportGen ReportGenerator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner, reportGen ReportGenerator) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, reportGen: reportGen}
}

// Create verifica que la categoría y el fornecedor existan y persiste el
// producto dentro de la misma tx. La ausencia de cualquiera de los dos llega
// como NotFoundError de la entidad referenciada; la FK del storage queda como
// última línea de defensa.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:          in.Name,
		PurchasePrice: in.PurchasePrice,
		Quantity:      in.Quantity,
		SalePrice:     in.SalePrice,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
	}
	err := uc.txRunner.Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
	) error {
		if _, err := categoryRepo.GetByID(in.CategoryID); err != nil {
			return err
		}
		if _, err := supplierRepo.GetByID(in.SupplierID); err != nil {
			return err
		}
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update sobrescribe todos los campos del producto y devuelve la fila releída.
func (uc *ProductUseCase) Update(id int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		ID:            id,
		Name:          in.Name,
		PurchasePrice: in.PurchasePrice,
		Quantity:      in.Quantity,
		SalePrice:     in.SalePrice,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Report genera el relatório de estoque en PDF con todos los productos.
func (uc *ProductUseCase) Report() ([]byte, error) {
	// Tope alto deliberado: el relatório es un dump completo, no una página.
	list, err := uc.repo.List(10000, 0)
	if err != nil {
		return nil, err
	}
	return uc.reportGen.ProductsReport(list)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		Quantity:      p.Quantity,
		SalePrice:     p.SalePrice,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
	}
}
