package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "PENDENTE"
	QuoteApproved QuoteStatus = "APROVADO"
	QuoteRejected QuoteStatus = "REJEITADO"
)

// IsValid reports whether s is one of the known quote statuses.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuotePending, QuoteApproved, QuoteRejected:
		return true
	}
	return false
}

// OrderStatus is the lifecycle state of a sales order.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "ABERTO"
	OrderFulfilled OrderStatus = "FATURADO"
	OrderCancelled OrderStatus = "CANCELADO"
)

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderOpen, OrderFulfilled, OrderCancelled:
		return true
	}
	return false
}

// DocumentItem is one line of a commercial document. Subtotal is fixed at
// creation time as Quantity × UnitPrice and never re-derived.
type DocumentItem struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Quote is a non-binding price proposal. Quotes never touch stock or the
// financial ledger.
type Quote struct {
	ID         int64
	Number     string
	CustomerID int64
	// CustomerName is populated on reads for the API response; it is not a
	// stored column.
	CustomerName string
	QuoteDate    time.Time
	ValidUntil   *time.Time
	Total        decimal.Decimal
	Notes        string
	Status       QuoteStatus
	Items        []DocumentItem
	Timestamps
}

// SalesOrder is a confirmed sale. Creating one also creates a pending RECEITA
// ledger entry for its total; stock only moves when an outbound note fulfils it.
type SalesOrder struct {
	ID           int64
	Number       string
	CustomerID   int64
	CustomerName string
	OrderDate    time.Time
	DeliveryDate *time.Time
	Total        decimal.Decimal
	Notes        string
	Status       OrderStatus
	Items        []DocumentItem
	Timestamps
}

// InboundNote records goods received from a supplier. Creating one increases
// stock per line, rewrites each product's cost price with the line price, logs
// ENTRADA movements and creates a pending DESPESA ledger entry.
type InboundNote struct {
	ID           int64
	Number       string
	SupplierID   int64
	SupplierName string
	EntryDate    time.Time
	Total        decimal.Decimal
	Notes        string
	Items        []DocumentItem
	Timestamps
}

// OutboundNote records goods shipped to a customer, optionally fulfilling a
// sales order. Creating one decreases stock per line and logs SAIDA movements;
// no ledger entry is produced (the order already carries it).
type OutboundNote struct {
	ID           int64
	Number       string
	CustomerID   int64
	CustomerName string
	SalesOrderID *int64
	ExitDate     time.Time
	Total        decimal.Decimal
	Notes        string
	Items        []DocumentItem
	Timestamps
}
