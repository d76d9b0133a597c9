package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorerp/gestor_backend/internal/dto"
)

// unfiltered movement listings are capped; per-product listings are not.
const movementListLimit = 100

// defaultAdjustmentNote is recorded when the caller supplies no note.
const defaultAdjustmentNote = "Ajuste manual de estoque"

// StockService implements the stock position report, the movement log and
// manual stock adjustments.
type StockService struct {
	stockRepo   portsrepo.StockRepository
	productRepo portsrepo.ProductRepository
}

// NewStockService creates a new StockService.
func NewStockService(stockRepo portsrepo.StockRepository, productRepo portsrepo.ProductRepository) *StockService {
	return &StockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// GetStockPositions reports the stock of every active product with its
// CRÍTICO/OK classification against the minimum threshold.
func (s *StockService) GetStockPositions(ctx context.Context) ([]domain.StockPosition, error) {
	positions, err := s.stockRepo.ListStockPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock positions: %w", err)
	}
	if positions == nil {
		return []domain.StockPosition{}, nil
	}
	return positions, nil
}

// ListMovements returns the movement log newest first, filtered by product
// when productID is non-nil and capped at 100 entries when unfiltered.
func (s *StockService) ListMovements(ctx context.Context, productID *int64) ([]domain.StockMovement, error) {
	limit := 0
	if productID == nil {
		limit = movementListLimit
	}
	movements, err := s.stockRepo.ListMovements(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	if movements == nil {
		return []domain.StockMovement{}, nil
	}
	return movements, nil
}

// AdjustStock sets a product's stock to the absolute quantity in the request
// and appends the AJUSTE movement carrying the signed delta.
func (s *StockService) AdjustStock(ctx context.Context, req dto.StockAdjustmentRequest) (*domain.StockMovement, error) {
	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		return nil, fmt.Errorf("produto %d: %w", req.ProductID, err)
	}

	notes := req.Notes
	if notes == "" {
		notes = defaultAdjustmentNote
	}

	movement, err := s.stockRepo.AdjustStock(ctx, req.ProductID, req.Quantity, notes, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock of product %d: %w", req.ProductID, err)
	}
	return movement, nil
}
