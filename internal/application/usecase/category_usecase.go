package usecase

import (
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Deja pasar los errores
// de dominio sin traducirlos: el not-found ya viene tipado del repositorio.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una nueva categoría y devuelve la fila persistida con su id.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{Name: in.Name}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(limit, offset int) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// ListNames devuelve los pares (id, nombre) de todas las categorías.
func (uc *CategoryUseCase) ListNames() ([]dto.CategoryNameResponse, error) {
	names, err := uc.repo.ListNames()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryNameResponse, 0, len(names))
	for _, n := range names {
		items = append(items, dto.CategoryNameResponse{ID: n.ID, Name: n.Name})
	}
	return items, nil
}

// Update sobrescribe la categoría y devuelve la fila releída.
func (uc *CategoryUseCase) Update(id int64, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{ID: id, Name: in.Name}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
