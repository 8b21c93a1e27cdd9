package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// FindByEmail devuelve (nil, nil) en ausencia: para auth la ausencia no es un
// error de la operación sino una rama del flujo de credenciales.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
