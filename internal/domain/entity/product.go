package entity

import "github.com/shopspring/decimal"

// Product representa un producto del estoque. CategoryID y SupplierID
// referencian filas existentes (FKs en la tabla).
type Product struct {
	ID            int64
	Name          string
	PurchasePrice decimal.Decimal
	Quantity      int
	SalePrice     decimal.Decimal
	CategoryID    int64
	SupplierID    int64
}
