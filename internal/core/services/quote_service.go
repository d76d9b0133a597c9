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

// QuoteService implements quote creation and maintenance. Quotes are the one
// document variant with no side effects: no stock movement, no ledger entry.
type QuoteService struct {
	quoteRepo    portsrepo.QuoteRepository
	customerRepo portsrepo.CustomerRepository
	productRepo  portsrepo.ProductRepository
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(quoteRepo portsrepo.QuoteRepository, customerRepo portsrepo.CustomerRepository, productRepo portsrepo.ProductRepository) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

func (s *QuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.Quote, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("cliente %d: %w", req.CustomerID, err)
	}

	status := domain.QuotePending
	if req.Status != "" {
		status = domain.QuoteStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("status %q inválido para orçamento: %w", req.Status, apperrors.ErrValidation)
		}
	}

	items, total, err := resolveDocumentItems(ctx, s.productRepo, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	quote := domain.Quote{
		Number:       req.Number,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		QuoteDate:    now,
		ValidUntil:   req.ValidUntil,
		Total:        total,
		Notes:        req.Notes,
		Status:       status,
		Items:        items,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.quoteRepo.SaveQuote(ctx, &quote); err != nil {
		return nil, fmt.Errorf("failed to create quote %s: %w", req.Number, err)
	}
	return &quote, nil
}

func (s *QuoteService) GetQuoteByID(ctx context.Context, id int64) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote %d: %w", id, err)
	}
	return quote, nil
}

func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.ListQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	if quotes == nil {
		return []domain.Quote{}, nil
	}
	return quotes, nil
}

// UpdateQuote changes status and/or notes. Items and total are immutable
// after creation.
func (s *QuoteService) UpdateQuote(ctx context.Context, id int64, req dto.UpdateQuoteRequest) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find quote %d for update: %w", id, err)
	}

	if req.Status != nil {
		status := domain.QuoteStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("status %q inválido para orçamento: %w", *req.Status, apperrors.ErrValidation)
		}
		quote.Status = status
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}
	quote.UpdatedAt = time.Now().UTC()

	if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
		return nil, fmt.Errorf("failed to update quote %d: %w", id, err)
	}
	return quote, nil
}

func (s *QuoteService) DeleteQuote(ctx context.Context, id int64) error {
	if _, err := s.quoteRepo.FindQuoteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find quote %d for deletion: %w", id, err)
	}
	if err := s.quoteRepo.DeleteQuote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quote %d: %w", id, err)
	}
	return nil
}
