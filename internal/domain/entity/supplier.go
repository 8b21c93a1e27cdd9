package entity

// Supplier representa un fornecedor. Name, Email y Phone son únicos.
type Supplier struct {
	ID    int64
	Name  string
	Email string
	Phone string
}
