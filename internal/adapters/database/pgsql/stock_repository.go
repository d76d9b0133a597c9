package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorerp/gestor_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxStockRepository serves the stock position report, the movement log and
// manual adjustments via pgx.
type PgxStockRepository struct {
	pool *pgxpool.Pool
}

// NewPgxStockRepository creates a new repository for stock data.
func NewPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepository {
	return &PgxStockRepository{pool: pool}
}

func (r *PgxStockRepository) ListStockPositions(ctx context.Context) ([]domain.StockPosition, error) {
	query := `
		SELECT id, codigo, nome, unidade, estoque_atual, estoque_minimo
		FROM produtos
		WHERE ativo = TRUE
		ORDER BY id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock positions: %w", err)
	}
	defer rows.Close()

	var positions []domain.StockPosition
	for rows.Next() {
		var p domain.StockPosition
		if err := rows.Scan(&p.ProductID, &p.Code, &p.Name, &p.Unit, &p.CurrentStock, &p.MinimumStock); err != nil {
			return nil, fmt.Errorf("failed to scan stock position row: %w", err)
		}
		p.Status = domain.StockStatusFor(p.CurrentStock, p.MinimumStock)
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

const movementSelect = `
	SELECT m.id, m.produto_id, p.nome, m.tipo, m.quantidade, m.estoque_anterior, m.estoque_atual, m.referencia, m.observacoes, m.data_movimento, m.created_at
	FROM movimentos_estoque m
	JOIN produtos p ON p.id = m.produto_id
`

func scanStockMovement(row pgx.Row) (*domain.StockMovement, error) {
	var m domain.StockMovement
	err := row.Scan(
		&m.ID,
		&m.ProductID,
		&m.ProductName,
		&m.Kind,
		&m.Quantity,
		&m.StockBefore,
		&m.StockAfter,
		&m.Reference,
		&m.Notes,
		&m.MovementDate,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMovements returns movements newest first. A non-nil productID filters by
// product; limit > 0 caps the result (used for the unfiltered listing).
func (r *PgxStockRepository) ListMovements(ctx context.Context, productID *int64, limit int) ([]domain.StockMovement, error) {
	query := movementSelect
	args := []any{}
	if productID != nil {
		query += ` WHERE m.produto_id = $1`
		args = append(args, *productID)
	}
	query += ` ORDER BY m.data_movimento DESC, m.id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	query += `;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		movement, err := scanStockMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock movement row: %w", err)
		}
		movements = append(movements, *movement)
	}
	return movements, rows.Err()
}

// AdjustStock sets the product's stock to the absolute target under a row lock
// and appends the AJUSTE movement carrying the signed delta, in one
// transaction.
func (r *PgxStockRepository) AdjustStock(ctx context.Context, productID int64, target decimal.Decimal, notes string, now time.Time) (*domain.StockMovement, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var productName string
	var before decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT nome, estoque_atual FROM produtos WHERE id = $1 FOR UPDATE;`, productID).
		Scan(&productName, &before)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock product %d: %w", productID, err)
	}

	_, err = tx.Exec(ctx, `UPDATE produtos SET estoque_atual = $2, updated_at = $3 WHERE id = $1;`, productID, target, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock of product %d: %w", productID, err)
	}

	movement := domain.StockMovement{
		ProductID:    productID,
		ProductName:  productName,
		Kind:         domain.MovementAdjust,
		Quantity:     target.Sub(before),
		StockBefore:  before,
		StockAfter:   target,
		Notes:        notes,
		MovementDate: now,
		CreatedAt:    now,
	}
	if err := insertStockMovement(ctx, tx, &movement); err != nil {
		return nil, fmt.Errorf("failed to insert adjustment movement for product %d: %w", productID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit stock adjustment of product %d: %w", productID, err)
	}
	return &movement, nil
}

// insertStockMovement appends one movement row inside the caller's transaction
// and fills the generated ID.
func insertStockMovement(ctx context.Context, tx pgx.Tx, m *domain.StockMovement) error {
	query := `
		INSERT INTO movimentos_estoque (produto_id, tipo, quantidade, estoque_anterior, estoque_atual, referencia, observacoes, data_movimento, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	return tx.QueryRow(ctx, query,
		m.ProductID,
		m.Kind,
		m.Quantity,
		m.StockBefore,
		m.StockAfter,
		m.Reference,
		m.Notes,
		m.MovementDate,
		m.CreatedAt,
	).Scan(&m.ID)
}
