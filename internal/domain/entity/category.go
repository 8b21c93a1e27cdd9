package entity

// Category representa una categoría de productos. Name es único.
type Category struct {
	ID   int64
	Name string
}

// CategoryName par (id, nombre) para el listado liviano de nombres.
type CategoryName struct {
	ID   int64
	Name string
}
