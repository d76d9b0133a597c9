package services

import (
	"context"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/gestorerp/gestor_backend/internal/dto"
)

// CustomerSvcFacade exposes the customer operations consumed by handlers.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeactivateCustomer(ctx context.Context, id int64) error
}

// SupplierSvcFacade exposes the supplier operations consumed by handlers.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, req dto.UpdateSupplierRequest) (*domain.Supplier, error)
	DeactivateSupplier(ctx context.Context, id int64) error
}

// ProductSvcFacade exposes the product operations consumed by handlers.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, req dto.UpdateProductRequest) (*domain.Product, error)
	DeactivateProduct(ctx context.Context, id int64) error
}

// QuoteSvcFacade exposes the quote operations consumed by handlers.
type QuoteSvcFacade interface {
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.Quote, error)
	GetQuoteByID(ctx context.Context, id int64) (*domain.Quote, error)
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
	UpdateQuote(ctx context.Context, id int64, req dto.UpdateQuoteRequest) (*domain.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error
}

// SalesOrderSvcFacade exposes the sales order operations consumed by handlers.
type SalesOrderSvcFacade interface {
	CreateSalesOrder(ctx context.Context, req dto.CreateSalesOrderRequest) (*domain.SalesOrder, error)
	GetSalesOrderByID(ctx context.Context, id int64) (*domain.SalesOrder, error)
	ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error)
	UpdateSalesOrder(ctx context.Context, id int64, req dto.UpdateSalesOrderRequest) (*domain.SalesOrder, error)
	DeleteSalesOrder(ctx context.Context, id int64) error
}

// InboundNoteSvcFacade exposes the inbound note operations consumed by handlers.
type InboundNoteSvcFacade interface {
	CreateInboundNote(ctx context.Context, req dto.CreateInboundNoteRequest) (*domain.InboundNote, error)
	GetInboundNoteByID(ctx context.Context, id int64) (*domain.InboundNote, error)
	ListInboundNotes(ctx context.Context) ([]domain.InboundNote, error)
	DeleteInboundNote(ctx context.Context, id int64) error
}

// OutboundNoteSvcFacade exposes the outbound note operations consumed by handlers.
type OutboundNoteSvcFacade interface {
	CreateOutboundNote(ctx context.Context, req dto.CreateOutboundNoteRequest) (*domain.OutboundNote, error)
	GetOutboundNoteByID(ctx context.Context, id int64) (*domain.OutboundNote, error)
	ListOutboundNotes(ctx context.Context) ([]domain.OutboundNote, error)
	DeleteOutboundNote(ctx context.Context, id int64) error
}

// StockSvcFacade exposes the stock reporting and adjustment operations.
type StockSvcFacade interface {
	GetStockPositions(ctx context.Context) ([]domain.StockPosition, error)
	ListMovements(ctx context.Context, productID *int64) ([]domain.StockMovement, error)
	AdjustStock(ctx context.Context, req dto.StockAdjustmentRequest) (*domain.StockMovement, error)
}

// LedgerSvcFacade exposes the financial ledger operations.
type LedgerSvcFacade interface {
	CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)
	GetLedgerEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error)
	ListLedgerEntries(ctx context.Context, req dto.ListLedgerEntriesRequest) ([]domain.LedgerEntry, error)
	UpdateLedgerEntry(ctx context.Context, id int64, req dto.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error)
	DeleteLedgerEntry(ctx context.Context, id int64) error
	GetFinancialSummary(ctx context.Context) (*domain.FinancialSummary, error)
}

// ServiceContainer bundles every service facade for injection into route
// registration.
type ServiceContainer struct {
	Customer     CustomerSvcFacade
	Supplier     SupplierSvcFacade
	Product      ProductSvcFacade
	Quote        QuoteSvcFacade
	SalesOrder   SalesOrderSvcFacade
	InboundNote  InboundNoteSvcFacade
	OutboundNote OutboundNoteSvcFacade
	Stock        StockSvcFacade
	Ledger       LedgerSvcFacade
}
