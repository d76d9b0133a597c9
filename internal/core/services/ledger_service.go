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

// LedgerService implements the financial ledger CRUD and the summary report.
// Entries created here are the caller-authored ones; order and inbound note
// creation write their derived entries through their own repositories.
type LedgerService struct {
	ledgerRepo   portsrepo.LedgerRepository
	customerRepo portsrepo.CustomerRepository
	supplierRepo portsrepo.SupplierRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, customerRepo portsrepo.CustomerRepository, supplierRepo portsrepo.SupplierRepository) *LedgerService {
	return &LedgerService{
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *LedgerService) CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	entryType := domain.LedgerType(req.Type)
	if !entryType.IsValid() {
		return nil, fmt.Errorf("tipo %q inválido para lançamento: %w", req.Type, apperrors.ErrValidation)
	}

	status := domain.LedgerPending
	if req.Status != "" {
		status = domain.LedgerStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("status %q inválido para lançamento: %w", req.Status, apperrors.ErrValidation)
		}
	}

	now := time.Now().UTC()
	entry := domain.LedgerEntry{
		Type:        entryType,
		Description: req.Description,
		Amount:      req.Amount,
		EntryDate:   now,
		DueDate:     req.DueDate,
		Status:      status,
		Category:    req.Category,
		CustomerID:  req.CustomerID,
		SupplierID:  req.SupplierID,
		Notes:       req.Notes,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if status == domain.LedgerPaid {
		entry.PaymentDate = &now
	}

	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("cliente %d: %w", *req.CustomerID, err)
		}
		entry.CustomerName = customer.Name
	}
	if req.SupplierID != nil {
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, *req.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("fornecedor %d: %w", *req.SupplierID, err)
		}
		entry.SupplierName = supplier.Name
	}

	if err := s.ledgerRepo.SaveLedgerEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return &entry, nil
}

func (s *LedgerService) GetLedgerEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindLedgerEntryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entry %d: %w", id, err)
	}
	return entry, nil
}

func (s *LedgerService) ListLedgerEntries(ctx context.Context, req dto.ListLedgerEntriesRequest) ([]domain.LedgerEntry, error) {
	entryType := domain.LedgerType(req.Type)
	status := domain.LedgerStatus(req.Status)
	if req.Type != "" && !entryType.IsValid() {
		return nil, fmt.Errorf("tipo %q inválido para filtro: %w", req.Type, apperrors.ErrValidation)
	}
	if req.Status != "" && !status.IsValid() {
		return nil, fmt.Errorf("status %q inválido para filtro: %w", req.Status, apperrors.ErrValidation)
	}

	entries, err := s.ledgerRepo.ListLedgerEntries(ctx, entryType, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	if entries == nil {
		return []domain.LedgerEntry{}, nil
	}
	return entries, nil
}

// UpdateLedgerEntry changes status and/or notes. The payment date is stamped
// once, on the first transition to PAGO, and never reset afterwards.
func (s *LedgerService) UpdateLedgerEntry(ctx context.Context, id int64, req dto.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindLedgerEntryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %d for update: %w", id, err)
	}

	now := time.Now().UTC()
	if req.Status != nil {
		status := domain.LedgerStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("status %q inválido para lançamento: %w", *req.Status, apperrors.ErrValidation)
		}
		if status == domain.LedgerPaid && entry.PaymentDate == nil {
			entry.PaymentDate = &now
		}
		entry.Status = status
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	entry.UpdatedAt = now

	if err := s.ledgerRepo.UpdateLedgerEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry %d: %w", id, err)
	}
	return entry, nil
}

func (s *LedgerService) DeleteLedgerEntry(ctx context.Context, id int64) error {
	if _, err := s.ledgerRepo.FindLedgerEntryByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find ledger entry %d for deletion: %w", id, err)
	}
	if err := s.ledgerRepo.DeleteLedgerEntry(ctx, id); err != nil {
		return fmt.Errorf("failed to delete ledger entry %d: %w", id, err)
	}
	return nil
}

func (s *LedgerService) GetFinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	summary, err := s.ledgerRepo.SummarizeLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ledger: %w", err)
	}
	return summary, nil
}
