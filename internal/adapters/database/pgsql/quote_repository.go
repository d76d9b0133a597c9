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

// PgxQuoteRepository persists quotes and their items via pgx.
type PgxQuoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgxQuoteRepository creates a new repository for quote data.
func NewPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepository {
	return &PgxQuoteRepository{pool: pool}
}

// SaveQuote inserts the quote header and its items in one transaction and
// fills the generated IDs.
func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote *domain.Quote) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	headerQuery := `
		INSERT INTO orcamentos (numero, cliente_id, data_orcamento, data_validade, valor_total, observacoes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		quote.Number,
		quote.CustomerID,
		quote.QuoteDate,
		quote.ValidUntil,
		quote.Total,
		quote.Notes,
		quote.Status,
		quote.CreatedAt,
		quote.UpdatedAt,
	).Scan(&quote.ID)
	if err != nil {
		return fmt.Errorf("failed to insert quote %s: %w", quote.Number, err)
	}

	if err := insertDocumentItems(ctx, tx, "itens_orcamento", "orcamento_id", quote.ID, quote.Items); err != nil {
		return fmt.Errorf("failed to insert items of quote %s: %w", quote.Number, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit quote %s: %w", quote.Number, err)
	}
	return nil
}

const quoteSelect = `
	SELECT o.id, o.numero, o.cliente_id, c.nome, o.data_orcamento, o.data_validade, o.valor_total, o.observacoes, o.status, o.created_at, o.updated_at
	FROM orcamentos o
	JOIN clientes c ON c.id = o.cliente_id
`

func scanQuote(row pgx.Row) (*domain.Quote, error) {
	var q domain.Quote
	err := row.Scan(
		&q.ID,
		&q.Number,
		&q.CustomerID,
		&q.CustomerName,
		&q.QuoteDate,
		&q.ValidUntil,
		&q.Total,
		&q.Notes,
		&q.Status,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, id int64) (*domain.Quote, error) {
	quote, err := scanQuote(r.pool.QueryRow(ctx, quoteSelect+` WHERE o.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote %d: %w", id, err)
	}

	items, err := loadDocumentItems(ctx, r.pool, "itens_orcamento", "orcamento_id", quote.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items of quote %d: %w", id, err)
	}
	quote.Items = items
	return quote, nil
}

func (r *PgxQuoteRepository) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	rows, err := r.pool.Query(ctx, quoteSelect+` ORDER BY o.id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote row: %w", err)
		}
		quotes = append(quotes, *quote)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range quotes {
		items, err := loadDocumentItems(ctx, r.pool, "itens_orcamento", "orcamento_id", quotes[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load items of quote %d: %w", quotes[i].ID, err)
		}
		quotes[i].Items = items
	}
	return quotes, nil
}

// UpdateQuote writes status and notes only; items and total are immutable.
func (r *PgxQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	query := `UPDATE orcamentos SET status = $2, observacoes = $3, updated_at = $4 WHERE id = $1;`
	tag, err := r.pool.Exec(ctx, query, quote.ID, quote.Status, quote.Notes, quote.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update quote %d: %w", quote.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteQuote hard-deletes the quote; items go with it via ON DELETE CASCADE.
func (r *PgxQuoteRepository) DeleteQuote(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orcamentos WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
