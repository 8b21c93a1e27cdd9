package usecase_test

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Reproducen el
// contrato de los reales: ausencia = *domain.NotFoundError, nunca (nil, nil).

type fakeCategoryRepo struct {
	rows   map[int64]*entity.Category
	nextID int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: make(map[int64]*entity.Category), nextID: 1}
}

func (r *fakeCategoryRepo) Create(category *entity.Category) error {
	for _, c := range r.rows {
		if c.Name == category.Name {
			return &domain.DuplicateError{Entity: "categoria", Constraint: "categories_name_key"}
		}
	}
	category.ID = r.nextID
	r.nextID++
	cp := *category
	r.rows[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.NewNotFound("categoria", id)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.rows))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.rows[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListNames() ([]entity.CategoryName, error) {
	out := make([]entity.CategoryName, 0, len(r.rows))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.rows[id]; ok {
			out = append(out, entity.CategoryName{ID: c.ID, Name: c.Name})
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) error {
	if _, ok := r.rows[category.ID]; !ok {
		return domain.NewNotFound("categoria", category.ID)
	}
	cp := *category
	r.rows[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.NewNotFound("categoria", id)
	}
	delete(r.rows, id)
	return nil
}

type fakeSupplierRepo struct {
	rows   map[int64]*entity.Supplier
	nextID int64
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{rows: make(map[int64]*entity.Supplier), nextID: 1}
}

func (r *fakeSupplierRepo) Create(supplier *entity.Supplier) error {
	supplier.ID = r.nextID
	r.nextID++
	cp := *supplier
	r.rows[supplier.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, domain.NewNotFound("fornecedor", id)
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.rows))
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.rows[id]; ok {
			cp := *s
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(supplier *entity.Supplier) error {
	if _, ok := r.rows[supplier.ID]; !ok {
		return domain.NewNotFound("fornecedor", supplier.ID)
	}
	cp := *supplier
	r.rows[supplier.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Delete(id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.NewNotFound("fornecedor", id)
	}
	delete(r.rows, id)
	return nil
}

type fakeProductRepo struct {
	rows   map[int64]*entity.Product
	nextID int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: make(map[int64]*entity.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	product.ID = r.nextID
	r.nextID++
	cp := *product
	r.rows[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, domain.NewNotFound("produto", id)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.rows))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.rows[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	if _, ok := r.rows[product.ID]; !ok {
		return domain.NewNotFound("produto", product.ID)
	}
	cp := *product
	r.rows[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.NewNotFound("produto", id)
	}
	delete(r.rows, id)
	return nil
}

// fakeTxRunner ejecuta fn directamente sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(tx.categoryRepo, tx.supplierRepo, tx.productRepo)
}

// fakeReportGenerator devuelve un payload fijo y registra cuántos productos
// recibió.
type fakeReportGenerator struct {
	gotProducts int
}

func (g *fakeReportGenerator) ProductsReport(products []*entity.Product) ([]byte, error) {
	g.gotProducts = len(products)
	return []byte("%PDF-1.4 fake"), nil
}
