package domain

import "github.com/shopspring/decimal"

// Product is a sellable/purchasable item. CurrentStock is only ever mutated by
// the document workflows (inbound/outbound notes and manual adjustments), each
// mutation leaving a StockMovement behind.
type Product struct {
	ID           int64
	Code         string
	Name         string
	Description  string
	Unit         string
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	MinimumStock decimal.Decimal
	CurrentStock decimal.Decimal
	Active       bool
	Timestamps
}

// StockStatus classifies a product's stock position against its minimum.
type StockStatus string

const (
	StockCritical StockStatus = "CRÍTICO"
	StockOK       StockStatus = "OK"
)

// StockStatusFor reports CRÍTICO when current stock is below the minimum.
func StockStatusFor(current, minimum decimal.Decimal) StockStatus {
	if current.LessThan(minimum) {
		return StockCritical
	}
	return StockOK
}

// StockPosition is the read model served by the stock position endpoint.
type StockPosition struct {
	ProductID    int64
	Code         string
	Name         string
	Unit         string
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal
	Status       StockStatus
}
