package repositories

import (
	"context"
	"time"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Context is included on every method for cancellation/timeouts. Repositories
// that persist a document and its side effects do so atomically: either the
// whole write sequence is visible or none of it is.

// CustomerRepository defines the persistence operations for customers.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer *domain.Customer) error
	FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
	// ListActiveCustomers returns active customers only; deactivated rows stay
	// reachable through FindCustomerByID.
	ListActiveCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeactivateCustomer(ctx context.Context, id int64, now time.Time) error
}

// SupplierRepository defines the persistence operations for suppliers.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier *domain.Supplier) error
	FindSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error)
	ListActiveSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeactivateSupplier(ctx context.Context, id int64, now time.Time) error
}

// ProductRepository defines the persistence operations for products.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product *domain.Product) error
	FindProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ListActiveProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeactivateProduct(ctx context.Context, id int64, now time.Time) error
}

// QuoteRepository defines the persistence operations for quotes. SaveQuote
// persists the header and its items in one transaction and fills generated IDs.
type QuoteRepository interface {
	SaveQuote(ctx context.Context, quote *domain.Quote) error
	FindQuoteByID(ctx context.Context, id int64) (*domain.Quote, error)
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
	UpdateQuote(ctx context.Context, quote domain.Quote) error
	// DeleteQuote hard-deletes the quote and cascades to its items.
	DeleteQuote(ctx context.Context, id int64) error
}

// SalesOrderRepository defines the persistence operations for sales orders.
type SalesOrderRepository interface {
	// SaveSalesOrder persists the order, its items and the derived ledger
	// entry in one transaction, filling generated IDs.
	SaveSalesOrder(ctx context.Context, order *domain.SalesOrder, ledgerEntry *domain.LedgerEntry) error
	FindSalesOrderByID(ctx context.Context, id int64) (*domain.SalesOrder, error)
	ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error)
	UpdateSalesOrder(ctx context.Context, order domain.SalesOrder) error
	DeleteSalesOrder(ctx context.Context, id int64) error
}

// InboundNoteRepository defines the persistence operations for inbound notes.
type InboundNoteRepository interface {
	// SaveInboundNote persists the note, its items, the per-line stock
	// increments (with cost price rewrite), the ENTRADA movements and the
	// derived ledger entry in one transaction. Product rows are locked for the
	// duration so before/after stock levels are consistent under concurrency.
	// The created movements are returned in item order.
	SaveInboundNote(ctx context.Context, note *domain.InboundNote, ledgerEntry *domain.LedgerEntry) ([]domain.StockMovement, error)
	FindInboundNoteByID(ctx context.Context, id int64) (*domain.InboundNote, error)
	ListInboundNotes(ctx context.Context) ([]domain.InboundNote, error)
	DeleteInboundNote(ctx context.Context, id int64) error
}

// OutboundNoteRepository defines the persistence operations for outbound notes.
type OutboundNoteRepository interface {
	// SaveOutboundNote persists the note, its items, the per-line stock
	// decrements, the SAIDA movements and the linked order's FATURADO status
	// flip in one transaction. Stock is re-checked under row locks; an
	// *apperrors.InsufficientStockError is returned (and nothing persisted)
	// if any line would overdraw.
	SaveOutboundNote(ctx context.Context, note *domain.OutboundNote) ([]domain.StockMovement, error)
	FindOutboundNoteByID(ctx context.Context, id int64) (*domain.OutboundNote, error)
	ListOutboundNotes(ctx context.Context) ([]domain.OutboundNote, error)
	DeleteOutboundNote(ctx context.Context, id int64) error
}

// StockRepository defines the stock reporting and adjustment operations.
type StockRepository interface {
	ListStockPositions(ctx context.Context) ([]domain.StockPosition, error)
	// ListMovements returns movements newest first, filtered by product when
	// productID is non-nil, capped at limit when unfiltered.
	ListMovements(ctx context.Context, productID *int64, limit int) ([]domain.StockMovement, error)
	// AdjustStock sets the product's stock to the absolute target inside a
	// transaction (product row locked) and appends the AJUSTE movement.
	AdjustStock(ctx context.Context, productID int64, target decimal.Decimal, notes string, now time.Time) (*domain.StockMovement, error)
}

// LedgerRepository defines the persistence operations for ledger entries.
type LedgerRepository interface {
	SaveLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error
	FindLedgerEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error)
	// ListLedgerEntries filters by type and/or status when non-empty, ordered
	// by due date descending.
	ListLedgerEntries(ctx context.Context, entryType domain.LedgerType, status domain.LedgerStatus) ([]domain.LedgerEntry, error)
	UpdateLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error
	DeleteLedgerEntry(ctx context.Context, id int64) error
	SummarizeLedger(ctx context.Context) (*domain.FinancialSummary, error)
}

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	CustomerRepo     CustomerRepository
	SupplierRepo     SupplierRepository
	ProductRepo      ProductRepository
	QuoteRepo        QuoteRepository
	SalesOrderRepo   SalesOrderRepository
	InboundNoteRepo  InboundNoteRepository
	OutboundNoteRepo OutboundNoteRepository
	StockRepo        StockRepository
	LedgerRepo       LedgerRepository
}
