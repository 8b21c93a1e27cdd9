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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para fornecedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo fornecedor y rellena el id generado (RETURNING).
// Name, email y phone tienen constraint único cada uno.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO suppliers (name, email, phone) VALUES ($1, $2, $3) RETURNING id`,
		supplier.Name, supplier.Email, supplier.Phone,
	).Scan(&supplier.ID)
	if err != nil {
		if derr := translateConstraint("fornecedor", err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un fornecedor por ID.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, email, phone FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("fornecedor", id)
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista fornecedores con paginación simple.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, email, phone FROM suppliers ORDER BY id LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update sobrescribe la fila y relee los campos persistidos (RETURNING).
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	err := r.q.QueryRow(context.Background(),
		`UPDATE suppliers SET name = $2, email = $3, phone = $4 WHERE id = $1
		 RETURNING id, name, email, phone`,
		supplier.ID, supplier.Name, supplier.Email, supplier.Phone,
	).Scan(&supplier.ID, &supplier.Name, &supplier.Email, &supplier.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("fornecedor", supplier.ID)
		}
		if derr := translateConstraint("fornecedor", err); derr != nil {
			return derr
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina el fornecedor; NotFoundError si el id no existe.
func (r *SupplierRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if derr := translateConstraint("fornecedor", err); derr != nil {
			return derr
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("fornecedor", id)
	}
	return nil
}
