package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorerp/gestor_backend/internal/dto"
)

// CustomerService implements the customer CRUD operations.
type CustomerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	now := time.Now().UTC()
	customer := domain.Customer{
		Name:    req.Name,
		CpfCnpj: req.CpfCnpj,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Active:  true,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, &customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListActiveCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// UpdateCustomer applies a partial update: nil fields keep their current value.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %d for update: %w", id, err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.CpfCnpj != nil {
		customer.CpfCnpj = *req.CpfCnpj
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.State != nil {
		customer.State = *req.State
	}
	if req.ZipCode != nil {
		customer.ZipCode = *req.ZipCode
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return customer, nil
}

// DeactivateCustomer flips the active flag; customer rows are never hard-deleted.
func (s *CustomerService) DeactivateCustomer(ctx context.Context, id int64) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find customer %d for deactivation: %w", id, err)
	}
	if err := s.customerRepo.DeactivateCustomer(ctx, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate customer %d: %w", id, err)
	}
	return nil
}

// SupplierService implements the supplier CRUD operations.
type SupplierService struct {
	supplierRepo portsrepo.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier := domain.Supplier{
		Name:    req.Name,
		Cnpj:    req.Cnpj,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Active:  true,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, &supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &supplier, nil
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier %d: %w", id, err)
	}
	return supplier, nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListActiveSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

// UpdateSupplier applies a partial update: nil fields keep their current value.
func (s *SupplierService) UpdateSupplier(ctx context.Context, id int64, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier %d for update: %w", id, err)
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Cnpj != nil {
		supplier.Cnpj = *req.Cnpj
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.City != nil {
		supplier.City = *req.City
	}
	if req.State != nil {
		supplier.State = *req.State
	}
	if req.ZipCode != nil {
		supplier.ZipCode = *req.ZipCode
	}
	supplier.UpdatedAt = time.Now().UTC()

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier %d: %w", id, err)
	}
	return supplier, nil
}

// DeactivateSupplier flips the active flag; supplier rows are never hard-deleted.
func (s *SupplierService) DeactivateSupplier(ctx context.Context, id int64) error {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find supplier %d for deactivation: %w", id, err)
	}
	if err := s.supplierRepo.DeactivateSupplier(ctx, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate supplier %d: %w", id, err)
	}
	return nil
}
