package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tags a stock movement with its origin.
type MovementKind string

const (
	MovementIn     MovementKind = "ENTRADA"
	MovementOut    MovementKind = "SAIDA"
	MovementAdjust MovementKind = "AJUSTE"
)

// IsValid reports whether k is one of the known movement kinds.
func (k MovementKind) IsValid() bool {
	switch k {
	case MovementIn, MovementOut, MovementAdjust:
		return true
	}
	return false
}

// StockMovement is an append-only audit record of a stock quantity change.
// Movements are never updated or deleted; deleting the document that caused
// one does not reverse it.
type StockMovement struct {
	ID          int64
	ProductID   int64
	ProductName string
	Kind        MovementKind
	// Quantity is the signed delta for AJUSTE and the absolute moved quantity
	// for ENTRADA/SAIDA, mirroring how the movement log is rendered.
	Quantity     decimal.Decimal
	StockBefore  decimal.Decimal
	StockAfter   decimal.Decimal
	Reference    string
	Notes        string
	MovementDate time.Time
	CreatedAt    time.Time
}
