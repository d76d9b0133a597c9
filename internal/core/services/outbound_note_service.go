package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorerp/gestor_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// OutboundNoteService implements outbound (shipping) note creation. All lines
// are validated (product existence, available stock) before any write.
// The repository then re-checks stock under row locks inside the transaction,
// so two concurrent notes cannot both pass validation and overdraw a product.
type OutboundNoteService struct {
	noteRepo     portsrepo.OutboundNoteRepository
	customerRepo portsrepo.CustomerRepository
	productRepo  portsrepo.ProductRepository
}

// NewOutboundNoteService creates a new OutboundNoteService.
func NewOutboundNoteService(noteRepo portsrepo.OutboundNoteRepository, customerRepo portsrepo.CustomerRepository, productRepo portsrepo.ProductRepository) *OutboundNoteService {
	return &OutboundNoteService{
		noteRepo:     noteRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

func (s *OutboundNoteService) CreateOutboundNote(ctx context.Context, req dto.CreateOutboundNoteRequest) (*domain.OutboundNote, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("cliente %d: %w", req.CustomerID, err)
	}

	// Validation pass over every line before anything is written. A failure
	// on line N must leave the stock of lines 1..N-1 untouched.
	items := make([]domain.DocumentItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		if !it.Quantity.IsPositive() {
			return nil, fmt.Errorf("produto %d: quantidade deve ser positiva: %w", it.ProductID, apperrors.ErrValidation)
		}
		product, err := s.productRepo.FindProductByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("produto %d: %w", it.ProductID, err)
		}
		if product.CurrentStock.LessThan(it.Quantity) {
			return nil, &apperrors.InsufficientStockError{
				ProductName: product.Name,
				Available:   product.CurrentStock,
				Requested:   it.Quantity,
			}
		}

		unitPrice := product.SalePrice
		if it.UnitPrice != nil {
			unitPrice = *it.UnitPrice
		}
		subtotal := it.Quantity.Mul(unitPrice)

		items = append(items, domain.DocumentItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    it.Quantity,
			UnitPrice:   unitPrice,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	now := time.Now().UTC()
	note := domain.OutboundNote{
		Number:       req.Number,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		SalesOrderID: req.SalesOrderID,
		ExitDate:     now,
		Total:        total,
		Notes:        req.Notes,
		Items:        items,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := s.noteRepo.SaveOutboundNote(ctx, &note); err != nil {
		return nil, fmt.Errorf("failed to create outbound note %s: %w", req.Number, err)
	}
	return &note, nil
}

func (s *OutboundNoteService) GetOutboundNoteByID(ctx context.Context, id int64) (*domain.OutboundNote, error) {
	note, err := s.noteRepo.FindOutboundNoteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get outbound note %d: %w", id, err)
	}
	return note, nil
}

func (s *OutboundNoteService) ListOutboundNotes(ctx context.Context) ([]domain.OutboundNote, error) {
	notes, err := s.noteRepo.ListOutboundNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outbound notes: %w", err)
	}
	if notes == nil {
		return []domain.OutboundNote{}, nil
	}
	return notes, nil
}

// DeleteOutboundNote hard-deletes the note and its items without reversing the
// stock movements it produced; the movement log is an immutable audit trail.
func (s *OutboundNoteService) DeleteOutboundNote(ctx context.Context, id int64) error {
	if _, err := s.noteRepo.FindOutboundNoteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find outbound note %d for deletion: %w", id, err)
	}
	if err := s.noteRepo.DeleteOutboundNote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete outbound note %d: %w", id, err)
	}
	return nil
}
