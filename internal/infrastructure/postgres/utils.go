package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// Códigos de error PostgreSQL relevantes para el mapeo a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translateConstraint mapea violaciones de constraint a errores de dominio
// tipados. El texto del driver nunca llega al cliente: el repositorio decide
// el tipo según el código SQLSTATE y el nombre del constraint.
func translateConstraint(entity string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return &domain.DuplicateError{Entity: entity, Constraint: pgErr.ConstraintName}
	case codeForeignKeyViolation:
		return &domain.ForeignKeyError{Entity: entity, Constraint: pgErr.ConstraintName}
	}
	return nil
}
