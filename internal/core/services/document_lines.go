package services

import (
	"context"
	"fmt"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorerp/gestor_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// resolveDocumentItems turns caller line requests into document items. Each
// product is looked up (ErrNotFound aborts the whole document); the line price
// defaults to the product's sale price when the caller omits it. Items come
// back in request order with subtotals fixed, alongside the accumulated total.
func resolveDocumentItems(ctx context.Context, productRepo portsrepo.ProductRepository, reqs []dto.DocumentItemRequest) ([]domain.DocumentItem, decimal.Decimal, error) {
	items := make([]domain.DocumentItem, 0, len(reqs))
	total := decimal.Zero

	for _, req := range reqs {
		if !req.Quantity.IsPositive() {
			return nil, decimal.Zero, fmt.Errorf("produto %d: quantidade deve ser positiva: %w", req.ProductID, apperrors.ErrValidation)
		}

		product, err := productRepo.FindProductByID(ctx, req.ProductID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("produto %d: %w", req.ProductID, err)
		}

		unitPrice := product.SalePrice
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		subtotal := req.Quantity.Mul(unitPrice)

		items = append(items, domain.DocumentItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   unitPrice,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	return items, total, nil
}
