package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear o editar un producto.
// CategoryID y SupplierID deben referenciar filas existentes.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Quantity      int             `json:"quantity" validate:"min=0"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CategoryID    int64           `json:"category_id" validate:"required,gt=0"`
	SupplierID    int64           `json:"supplier_id" validate:"required,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Quantity      int             `json:"quantity"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CategoryID    int64           `json:"category_id"`
	SupplierID    int64           `json:"supplier_id"`
}
