package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSalesOrderRepository persists sales orders, their items and the ledger
// entry derived at creation via pgx.
type PgxSalesOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSalesOrderRepository creates a new repository for sales order data.
func NewPgxSalesOrderRepository(pool *pgxpool.Pool) portsrepo.SalesOrderRepository {
	return &PgxSalesOrderRepository{pool: pool}
}

// SaveSalesOrder inserts the order header, its items and the derived RECEITA
// ledger entry in one transaction, filling generated IDs.
func (r *PgxSalesOrderRepository) SaveSalesOrder(ctx context.Context, order *domain.SalesOrder, ledgerEntry *domain.LedgerEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	headerQuery := `
		INSERT INTO pedidos_venda (numero, cliente_id, data_pedido, data_entrega, valor_total, observacoes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		order.Number,
		order.CustomerID,
		order.OrderDate,
		order.DeliveryDate,
		order.Total,
		order.Notes,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert sales order %s: %w", order.Number, err)
	}

	if err := insertDocumentItems(ctx, tx, "itens_pedido_venda", "pedido_venda_id", order.ID, order.Items); err != nil {
		return fmt.Errorf("failed to insert items of sales order %s: %w", order.Number, err)
	}

	if err := insertLedgerEntry(ctx, tx, ledgerEntry); err != nil {
		return fmt.Errorf("failed to insert ledger entry of sales order %s: %w", order.Number, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sales order %s: %w", order.Number, err)
	}
	return nil
}

const salesOrderSelect = `
	SELECT p.id, p.numero, p.cliente_id, c.nome, p.data_pedido, p.data_entrega, p.valor_total, p.observacoes, p.status, p.created_at, p.updated_at
	FROM pedidos_venda p
	JOIN clientes c ON c.id = p.cliente_id
`

func scanSalesOrder(row pgx.Row) (*domain.SalesOrder, error) {
	var o domain.SalesOrder
	err := row.Scan(
		&o.ID,
		&o.Number,
		&o.CustomerID,
		&o.CustomerName,
		&o.OrderDate,
		&o.DeliveryDate,
		&o.Total,
		&o.Notes,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PgxSalesOrderRepository) FindSalesOrderByID(ctx context.Context, id int64) (*domain.SalesOrder, error) {
	order, err := scanSalesOrder(r.pool.QueryRow(ctx, salesOrderSelect+` WHERE p.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sales order %d: %w", id, err)
	}

	items, err := loadDocumentItems(ctx, r.pool, "itens_pedido_venda", "pedido_venda_id", order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items of sales order %d: %w", id, err)
	}
	order.Items = items
	return order, nil
}

func (r *PgxSalesOrderRepository) ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error) {
	rows, err := r.pool.Query(ctx, salesOrderSelect+` ORDER BY p.id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.SalesOrder
	for rows.Next() {
		order, err := scanSalesOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := loadDocumentItems(ctx, r.pool, "itens_pedido_venda", "pedido_venda_id", orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load items of sales order %d: %w", orders[i].ID, err)
		}
		orders[i].Items = items
	}
	return orders, nil
}

// UpdateSalesOrder writes status and notes only; items and total are immutable.
func (r *PgxSalesOrderRepository) UpdateSalesOrder(ctx context.Context, order domain.SalesOrder) error {
	query := `UPDATE pedidos_venda SET status = $2, observacoes = $3, updated_at = $4 WHERE id = $1;`
	tag, err := r.pool.Exec(ctx, query, order.ID, order.Status, order.Notes, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update sales order %d: %w", order.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSalesOrder hard-deletes the order; items cascade, outbound notes that
// referenced it keep existing with a cleared link (ON DELETE SET NULL), and
// the ledger entry created with the order is left untouched.
func (r *PgxSalesOrderRepository) DeleteSalesOrder(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pedidos_venda WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sales order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
