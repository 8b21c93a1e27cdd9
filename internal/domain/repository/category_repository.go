package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las ausencias se reportan siempre como *domain.NotFoundError, nunca con nil.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, error)
	ListNames() ([]entity.CategoryName, error)
	Update(category *entity.Category) error
	Delete(id int64) error
}
