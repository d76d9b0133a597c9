package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorerp/gestor_backend/internal/dto"
)

// SalesOrderService implements sales order creation and maintenance. Creating
// an order also produces exactly one pending RECEITA ledger entry for its
// total; both rows are persisted in the same database transaction.
type SalesOrderService struct {
	orderRepo    portsrepo.SalesOrderRepository
	customerRepo portsrepo.CustomerRepository
	productRepo  portsrepo.ProductRepository
}

// NewSalesOrderService creates a new SalesOrderService.
func NewSalesOrderService(orderRepo portsrepo.SalesOrderRepository, customerRepo portsrepo.CustomerRepository, productRepo portsrepo.ProductRepository) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

func (s *SalesOrderService) CreateSalesOrder(ctx context.Context, req dto.CreateSalesOrderRequest) (*domain.SalesOrder, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("cliente %d: %w", req.CustomerID, err)
	}

	status := domain.OrderOpen
	if req.Status != "" {
		status = domain.OrderStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("status %q inválido para pedido: %w", req.Status, apperrors.ErrValidation)
		}
	}

	items, total, err := resolveDocumentItems(ctx, s.productRepo, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := domain.SalesOrder{
		Number:       req.Number,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		OrderDate:    now,
		DeliveryDate: req.DeliveryDate,
		Total:        total,
		Notes:        req.Notes,
		Status:       status,
		Items:        items,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	customerID := customer.ID
	ledgerEntry := domain.LedgerEntry{
		Type:         domain.LedgerRevenue,
		Description:  fmt.Sprintf("Pedido de Venda #%s", req.Number),
		Amount:       total,
		EntryDate:    now,
		Status:       domain.LedgerPending,
		Category:     domain.CategorySales,
		CustomerID:   &customerID,
		CustomerName: customer.Name,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.orderRepo.SaveSalesOrder(ctx, &order, &ledgerEntry); err != nil {
		return nil, fmt.Errorf("failed to create sales order %s: %w", req.Number, err)
	}
	return &order, nil
}

func (s *SalesOrderService) GetSalesOrderByID(ctx context.Context, id int64) (*domain.SalesOrder, error) {
	order, err := s.orderRepo.FindSalesOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales order %d: %w", id, err)
	}
	return order, nil
}

func (s *SalesOrderService) ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error) {
	orders, err := s.orderRepo.ListSalesOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	if orders == nil {
		return []domain.SalesOrder{}, nil
	}
	return orders, nil
}

// UpdateSalesOrder changes status and/or notes. Items and total are immutable
// after creation.
func (s *SalesOrderService) UpdateSalesOrder(ctx context.Context, id int64, req dto.UpdateSalesOrderRequest) (*domain.SalesOrder, error) {
	order, err := s.orderRepo.FindSalesOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find sales order %d for update: %w", id, err)
	}

	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("status %q inválido para pedido: %w", *req.Status, apperrors.ErrValidation)
		}
		order.Status = status
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	order.UpdatedAt = time.Now().UTC()

	if err := s.orderRepo.UpdateSalesOrder(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update sales order %d: %w", id, err)
	}
	return order, nil
}

// DeleteSalesOrder hard-deletes the order and its items. The ledger entry
// created alongside the order is not touched: it lives its own lifecycle and
// deletion here is an administrative record purge, not a reversal.
func (s *SalesOrderService) DeleteSalesOrder(ctx context.Context, id int64) error {
	if _, err := s.orderRepo.FindSalesOrderByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find sales order %d for deletion: %w", id, err)
	}
	if err := s.orderRepo.DeleteSalesOrder(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sales order %d: %w", id, err)
	}
	return nil
}
