package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y rellena el id generado (RETURNING).
// Las FKs a categories y suppliers las valida el storage; una violación
// llega como ForeignKeyError tipado.
func (r *ProductRepo) Create(product *entity.Product) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO products (name, purchase_price, quantity, sale_price, category_id, supplier_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		product.Name, product.PurchasePrice, product.Quantity, product.SalePrice,
		product.CategoryID, product.SupplierID,
	).Scan(&product.ID)
	if err != nil {
		if derr := translateConstraint("produto", err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, purchase_price, quantity, sale_price, category_id, supplier_id
		 FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.PurchasePrice, &p.Quantity, &p.SalePrice, &p.CategoryID, &p.SupplierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("produto", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación simple.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, purchase_price, quantity, sale_price, category_id, supplier_id
		 FROM products ORDER BY id LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PurchasePrice, &p.Quantity, &p.SalePrice,
			&p.CategoryID, &p.SupplierID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos y relee la fila persistida (RETURNING).
func (r *ProductRepo) Update(product *entity.Product) error {
	err := r.q.QueryRow(context.Background(),
		`UPDATE products
		 SET name = $2, purchase_price = $3, quantity = $4, sale_price = $5, category_id = $6, supplier_id = $7
		 WHERE id = $1
		 RETURNING id, name, purchase_price, quantity, sale_price, category_id, supplier_id`,
		product.ID, product.Name, product.PurchasePrice, product.Quantity, product.SalePrice,
		product.CategoryID, product.SupplierID,
	).Scan(&product.ID, &product.Name, &product.PurchasePrice, &product.Quantity,
		&product.SalePrice, &product.CategoryID, &product.SupplierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("produto", product.ID)
		}
		if derr := translateConstraint("produto", err); derr != nil {
			return derr
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina el producto; NotFoundError si el id no existe.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("produto", id)
	}
	return nil
}
