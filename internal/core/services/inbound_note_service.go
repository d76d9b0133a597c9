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

// InboundNoteService implements inbound (purchase) note creation. Creating a
// note increases stock per line, rewrites each product's cost price with the
// line price, logs ENTRADA movements and creates one pending DESPESA ledger
// entry, all inside a single database transaction in the repository.
type InboundNoteService struct {
	noteRepo     portsrepo.InboundNoteRepository
	supplierRepo portsrepo.SupplierRepository
	productRepo  portsrepo.ProductRepository
}

// NewInboundNoteService creates a new InboundNoteService.
func NewInboundNoteService(noteRepo portsrepo.InboundNoteRepository, supplierRepo portsrepo.SupplierRepository, productRepo portsrepo.ProductRepository) *InboundNoteService {
	return &InboundNoteService{
		noteRepo:     noteRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

func (s *InboundNoteService) CreateInboundNote(ctx context.Context, req dto.CreateInboundNoteRequest) (*domain.InboundNote, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("fornecedor %d: %w", req.SupplierID, err)
	}

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

		subtotal := it.Quantity.Mul(it.UnitPrice)
		items = append(items, domain.DocumentItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	now := time.Now().UTC()
	note := domain.InboundNote{
		Number:       req.Number,
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		EntryDate:    now,
		Total:        total,
		Notes:        req.Notes,
		Items:        items,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	supplierID := supplier.ID
	ledgerEntry := domain.LedgerEntry{
		Type:         domain.LedgerExpense,
		Description:  fmt.Sprintf("Nota de Entrada #%s", req.Number),
		Amount:       total,
		EntryDate:    now,
		Status:       domain.LedgerPending,
		Category:     domain.CategoryPurchases,
		SupplierID:   &supplierID,
		SupplierName: supplier.Name,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := s.noteRepo.SaveInboundNote(ctx, &note, &ledgerEntry); err != nil {
		return nil, fmt.Errorf("failed to create inbound note %s: %w", req.Number, err)
	}
	return &note, nil
}

func (s *InboundNoteService) GetInboundNoteByID(ctx context.Context, id int64) (*domain.InboundNote, error) {
	note, err := s.noteRepo.FindInboundNoteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inbound note %d: %w", id, err)
	}
	return note, nil
}

func (s *InboundNoteService) ListInboundNotes(ctx context.Context) ([]domain.InboundNote, error) {
	notes, err := s.noteRepo.ListInboundNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbound notes: %w", err)
	}
	if notes == nil {
		return []domain.InboundNote{}, nil
	}
	return notes, nil
}

// DeleteInboundNote hard-deletes the note and its items. Stock movements and
// the ledger entry it produced are kept: movements are an immutable audit
// trail and the ledger entry lives its own lifecycle.
func (s *InboundNoteService) DeleteInboundNote(ctx context.Context, id int64) error {
	if _, err := s.noteRepo.FindInboundNoteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find inbound note %d for deletion: %w", id, err)
	}
	if err := s.noteRepo.DeleteInboundNote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete inbound note %d: %w", id, err)
	}
	return nil
}
