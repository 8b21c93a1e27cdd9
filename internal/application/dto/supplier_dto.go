package dto

// CreateSupplierRequest entrada para crear o editar un fornecedor.
// Name, email y phone son únicos en la tabla.
type CreateSupplierRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=1,max=30"`
}

// SupplierResponse salida de un fornecedor.
type SupplierResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
