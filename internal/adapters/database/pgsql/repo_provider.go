package pgsql

import (
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over the shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:     NewPgxCustomerRepository(pool),
		SupplierRepo:     NewPgxSupplierRepository(pool),
		ProductRepo:      NewPgxProductRepository(pool),
		QuoteRepo:        NewPgxQuoteRepository(pool),
		SalesOrderRepo:   NewPgxSalesOrderRepository(pool),
		InboundNoteRepo:  NewPgxInboundNoteRepository(pool),
		OutboundNoteRepo: NewPgxOutboundNoteRepository(pool),
		StockRepo:        NewPgxStockRepository(pool),
		LedgerRepo:       NewPgxLedgerRepository(pool),
	}
}
