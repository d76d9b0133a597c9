package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerType distinguishes receivables from payables.
type LedgerType string

const (
	LedgerRevenue LedgerType = "RECEITA"
	LedgerExpense LedgerType = "DESPESA"
)

// IsValid reports whether t is one of the known ledger types.
func (t LedgerType) IsValid() bool {
	return t == LedgerRevenue || t == LedgerExpense
}

// LedgerStatus is the payment state of a ledger entry.
type LedgerStatus string

const (
	LedgerPending   LedgerStatus = "PENDENTE"
	LedgerPaid      LedgerStatus = "PAGO"
	LedgerCancelled LedgerStatus = "CANCELADO"
)

// IsValid reports whether s is one of the known ledger statuses.
func (s LedgerStatus) IsValid() bool {
	switch s {
	case LedgerPending, LedgerPaid, LedgerCancelled:
		return true
	}
	return false
}

// Ledger entry categories written by the document workflows.
const (
	CategorySales     = "VENDAS"
	CategoryPurchases = "COMPRAS"
)

// LedgerEntry is a receivable/payable record. Entries are created directly by
// callers or as a side effect of sales order / inbound note creation. After
// creation only status, notes and the payment date may change; PaymentDate is
// stamped once, on the first transition to PAGO.
type LedgerEntry struct {
	ID           int64
	Type         LedgerType
	Description  string
	Amount       decimal.Decimal
	EntryDate    time.Time
	DueDate      *time.Time
	PaymentDate  *time.Time
	Status       LedgerStatus
	Category     string
	CustomerID   *int64
	CustomerName string
	SupplierID   *int64
	SupplierName string
	Notes        string
	Timestamps
}

// SummaryBucket aggregates ledger amounts of one type by payment state.
type SummaryBucket struct {
	Pending decimal.Decimal
	Paid    decimal.Decimal
	Total   decimal.Decimal
}

// FinancialSummary is the aggregated view served by the financeiro/resumo
// endpoint. Balance counts settled amounts only; ProjectedBalance assumes
// every pending entry settles.
type FinancialSummary struct {
	Revenues         SummaryBucket
	Expenses         SummaryBucket
	Balance          decimal.Decimal
	ProjectedBalance decimal.Decimal
}
