package dto

import (
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"nome" binding:"required"`
	CpfCnpj string `json:"cpf_cnpj" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
	City    string `json:"cidade"`
	State   string `json:"estado"`
	ZipCode string `json:"cep"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Pointers distinguish omitted fields from zero-value updates; absent fields
// keep their current value.
type UpdateCustomerRequest struct {
	Name    *string `json:"nome"`
	CpfCnpj *string `json:"cpf_cnpj"`
	Email   *string `json:"email"`
	Phone   *string `json:"telefone"`
	Address *string `json:"endereco"`
	City    *string `json:"cidade"`
	State   *string `json:"estado"`
	ZipCode *string `json:"cep"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	CpfCnpj   string    `json:"cpf_cnpj"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Address   string    `json:"endereco"`
	City      string    `json:"cidade"`
	State     string    `json:"estado"`
	ZipCode   string    `json:"cep"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		CpfCnpj:   c.CpfCnpj,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of customers to response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"nome" binding:"required"`
	Cnpj    string `json:"cnpj" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
	City    string `json:"cidade"`
	State   string `json:"estado"`
	ZipCode string `json:"cep"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name    *string `json:"nome"`
	Cnpj    *string `json:"cnpj"`
	Email   *string `json:"email"`
	Phone   *string `json:"telefone"`
	Address *string `json:"endereco"`
	City    *string `json:"cidade"`
	State   *string `json:"estado"`
	ZipCode *string `json:"cep"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Cnpj      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Address   string    `json:"endereco"`
	City      string    `json:"cidade"`
	State     string    `json:"estado"`
	ZipCode   string    `json:"cep"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Cnpj:      s.Cnpj,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		ZipCode:   s.ZipCode,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToListSupplierResponse converts a slice of suppliers to response DTOs.
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return res
}
