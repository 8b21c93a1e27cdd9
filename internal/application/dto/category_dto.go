package dto

// CreateCategoryRequest entrada para crear o editar una categoría
// (el update sobrescribe todos los campos, mismo schema).
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryNameResponse par (id, nombre) para el listado de nombres.
type CategoryNameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
