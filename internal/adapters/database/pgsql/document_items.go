package pgsql

import (
	"context"
	"fmt"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// The four document item tables share one shape: a foreign key to the header,
// a product reference and the quantity/price/subtotal triple. These helpers
// keep the per-document repositories free of copy-pasted item SQL. Table and
// column names are compile-time constants, never caller input.

func insertDocumentItems(ctx context.Context, tx pgx.Tx, table, headerCol string, headerID int64, items []domain.DocumentItem) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, produto_id, quantidade, preco_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`, table, headerCol)

	for i := range items {
		err := tx.QueryRow(ctx, query,
			headerID,
			items[i].ProductID,
			items[i].Quantity,
			items[i].UnitPrice,
			items[i].Subtotal,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert item for product %d: %w", items[i].ProductID, err)
		}
	}
	return nil
}

func loadDocumentItems(ctx context.Context, q querier, table, headerCol string, headerID int64) ([]domain.DocumentItem, error) {
	query := fmt.Sprintf(`
		SELECT i.id, i.produto_id, p.nome, i.quantidade, i.preco_unitario, i.subtotal
		FROM %s i
		JOIN produtos p ON p.id = i.produto_id
		WHERE i.%s = $1
		ORDER BY i.id;
	`, table, headerCol)

	rows, err := q.Query(ctx, query, headerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	defer rows.Close()

	var items []domain.DocumentItem
	for rows.Next() {
		var it domain.DocumentItem
		if err := rows.Scan(&it.ID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// querier is the subset of pgxpool.Pool / pgx.Tx the read helpers need.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
