package dto

import (
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Code         string           `json:"codigo" binding:"required"`
	Name         string           `json:"nome" binding:"required"`
	Description  string           `json:"descricao"`
	Unit         string           `json:"unidade"`
	CostPrice    *decimal.Decimal `json:"preco_custo"`
	SalePrice    *decimal.Decimal `json:"preco_venda"`
	MinimumStock *decimal.Decimal `json:"estoque_minimo"`
	InitialStock *decimal.Decimal `json:"estoque_atual"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Stock is deliberately absent: current stock only changes through the
// document workflows and manual adjustments.
type UpdateProductRequest struct {
	Code         *string          `json:"codigo"`
	Name         *string          `json:"nome"`
	Description  *string          `json:"descricao"`
	Unit         *string          `json:"unidade"`
	CostPrice    *decimal.Decimal `json:"preco_custo"`
	SalePrice    *decimal.Decimal `json:"preco_venda"`
	MinimumStock *decimal.Decimal `json:"estoque_minimo"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Code         string          `json:"codigo"`
	Name         string          `json:"nome"`
	Description  string          `json:"descricao"`
	Unit         string          `json:"unidade"`
	CostPrice    decimal.Decimal `json:"preco_custo"`
	SalePrice    decimal.Decimal `json:"preco_venda"`
	MinimumStock decimal.Decimal `json:"estoque_minimo"`
	CurrentStock decimal.Decimal `json:"estoque_atual"`
	Active       bool            `json:"ativo"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Unit:         p.Unit,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		MinimumStock: p.MinimumStock,
		CurrentStock: p.CurrentStock,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToListProductResponse converts a slice of products to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// StockPositionResponse is one row of the stock position report.
type StockPositionResponse struct {
	ProductID    int64           `json:"produto_id"`
	Code         string          `json:"codigo"`
	Name         string          `json:"nome"`
	Unit         string          `json:"unidade"`
	CurrentStock decimal.Decimal `json:"estoque_atual"`
	MinimumStock decimal.Decimal `json:"estoque_minimo"`
	Status       string          `json:"status"`
}

// ToListStockPositionResponse converts stock positions to response DTOs.
func ToListStockPositionResponse(positions []domain.StockPosition) []StockPositionResponse {
	res := make([]StockPositionResponse, len(positions))
	for i, p := range positions {
		res[i] = StockPositionResponse{
			ProductID:    p.ProductID,
			Code:         p.Code,
			Name:         p.Name,
			Unit:         p.Unit,
			CurrentStock: p.CurrentStock,
			MinimumStock: p.MinimumStock,
			Status:       string(p.Status),
		}
	}
	return res
}
