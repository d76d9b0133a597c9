package dto

import (
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockAdjustmentRequest sets a product's stock to an absolute target value.
type StockAdjustmentRequest struct {
	ProductID int64           `json:"produto_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantidade" binding:"required"`
	Notes     string          `json:"observacoes"`
}

// StockMovementResponse defines the data returned for a stock movement.
type StockMovementResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"produto_id"`
	ProductName  string          `json:"produto_nome"`
	Kind         string          `json:"tipo"`
	Quantity     decimal.Decimal `json:"quantidade"`
	StockBefore  decimal.Decimal `json:"estoque_anterior"`
	StockAfter   decimal.Decimal `json:"estoque_atual"`
	Reference    string          `json:"referencia"`
	Notes        string          `json:"observacoes"`
	MovementDate time.Time       `json:"data_movimento"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToStockMovementResponse converts a domain.StockMovement to its response DTO.
func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		Kind:         string(m.Kind),
		Quantity:     m.Quantity,
		StockBefore:  m.StockBefore,
		StockAfter:   m.StockAfter,
		Reference:    m.Reference,
		Notes:        m.Notes,
		MovementDate: m.MovementDate,
		CreatedAt:    m.CreatedAt,
	}
}

// ToListStockMovementResponse converts a slice of movements to response DTOs.
func ToListStockMovementResponse(movements []domain.StockMovement) []StockMovementResponse {
	res := make([]StockMovementResponse, len(movements))
	for i := range movements {
		res[i] = ToStockMovementResponse(&movements[i])
	}
	return res
}
