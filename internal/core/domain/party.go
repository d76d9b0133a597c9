package domain

// Customer is a customer master record. Customers are never hard-deleted once
// documents reference them; DELETE flips Active instead.
type Customer struct {
	ID      int64
	Name    string
	CpfCnpj string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
	Active  bool
	Timestamps
}

// Supplier is a supplier master record, soft-deactivated like Customer.
type Supplier struct {
	ID      int64
	Name    string
	Cnpj    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
	Active  bool
	Timestamps
}
