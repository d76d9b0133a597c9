package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorerp/gestor_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ProductService implements the product CRUD operations.
type ProductService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	now := time.Now().UTC()
	unit := req.Unit
	if unit == "" {
		unit = "UN"
	}
	product := domain.Product{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		Unit:         unit,
		CostPrice:    valueOrZero(req.CostPrice),
		SalePrice:    valueOrZero(req.SalePrice),
		MinimumStock: valueOrZero(req.MinimumStock),
		CurrentStock: valueOrZero(req.InitialStock),
		Active:       true,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// UpdateProduct applies a partial update. Current stock is not updatable here;
// it only moves through document workflows and manual adjustments.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %d for update: %w", id, err)
	}

	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	if req.MinimumStock != nil {
		product.MinimumStock = *req.MinimumStock
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return product, nil
}

// DeactivateProduct flips the active flag. The product drops out of unfiltered
// listings but remains fetchable by id and keeps its movement history.
func (s *ProductService) DeactivateProduct(ctx context.Context, id int64) error {
	if _, err := s.productRepo.FindProductByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find product %d for deactivation: %w", id, err)
	}
	if err := s.productRepo.DeactivateProduct(ctx, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate product %d: %w", id, err)
	}
	return nil
}
