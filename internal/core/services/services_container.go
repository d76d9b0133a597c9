package services

import (
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	portssvc "github.com/gestorerp/gestor_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Customer:     NewCustomerService(repos.CustomerRepo),
		Supplier:     NewSupplierService(repos.SupplierRepo),
		Product:      NewProductService(repos.ProductRepo),
		Quote:        NewQuoteService(repos.QuoteRepo, repos.CustomerRepo, repos.ProductRepo),
		SalesOrder:   NewSalesOrderService(repos.SalesOrderRepo, repos.CustomerRepo, repos.ProductRepo),
		InboundNote:  NewInboundNoteService(repos.InboundNoteRepo, repos.SupplierRepo, repos.ProductRepo),
		OutboundNote: NewOutboundNoteService(repos.OutboundNoteRepo, repos.CustomerRepo, repos.ProductRepo),
		Stock:        NewStockService(repos.StockRepo, repos.ProductRepo),
		Ledger:       NewLedgerService(repos.LedgerRepo, repos.CustomerRepo, repos.SupplierRepo),
	}
}

// Compile-time checks that each service satisfies its facade.
var (
	_ portssvc.CustomerSvcFacade     = (*CustomerService)(nil)
	_ portssvc.SupplierSvcFacade     = (*SupplierService)(nil)
	_ portssvc.ProductSvcFacade      = (*ProductService)(nil)
	_ portssvc.QuoteSvcFacade        = (*QuoteService)(nil)
	_ portssvc.SalesOrderSvcFacade   = (*SalesOrderService)(nil)
	_ portssvc.InboundNoteSvcFacade  = (*InboundNoteService)(nil)
	_ portssvc.OutboundNoteSvcFacade = (*OutboundNoteService)(nil)
	_ portssvc.StockSvcFacade        = (*StockService)(nil)
	_ portssvc.LedgerSvcFacade       = (*LedgerService)(nil)
)
