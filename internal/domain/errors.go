package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los tipos de abajo envuelven
// estos sentinelas para que los handlers puedan hacer matching con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForeignKey         = errors.New("referencia inexistente")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
)

// NotFoundError ausencia de una fila, decidida en la frontera del repositorio.
// Ningún repositorio devuelve (nil, nil); la ausencia siempre es este error.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con id %d no encontrado", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye el error de ausencia para una entidad.
func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// DuplicateError violación de constraint único (23505) tipada por el
// repositorio; Constraint lleva el nombre del índice violado.
type DuplicateError struct {
	Entity     string
	Constraint string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s duplicado (constraint %s)", e.Entity, e.Constraint)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// ForeignKeyError violación de foreign key (23503): la fila referenciada no existe.
type ForeignKeyError struct {
	Entity     string
	Constraint string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("%s referencia una fila inexistente (constraint %s)", e.Entity, e.Constraint)
}

func (e *ForeignKeyError) Unwrap() error { return ErrForeignKey }
