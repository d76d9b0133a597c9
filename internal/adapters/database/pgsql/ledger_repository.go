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

// PgxLedgerRepository stores receivable/payable entries via pgx.
type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLedgerRepository creates a new repository for ledger entries.
func NewPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{pool: pool}
}

// rowQuerier lets insertLedgerEntry run against the pool or inside a document
// transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// insertLedgerEntry appends one ledger row and fills the generated ID.
func insertLedgerEntry(ctx context.Context, q rowQuerier, entry *domain.LedgerEntry) error {
	query := `
		INSERT INTO lancamentos_financeiros (tipo, descricao, valor, data_lancamento, data_vencimento, data_pagamento, status, categoria, cliente_id, fornecedor_id, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	return q.QueryRow(ctx, query,
		entry.Type,
		entry.Description,
		entry.Amount,
		entry.EntryDate,
		entry.DueDate,
		entry.PaymentDate,
		entry.Status,
		entry.Category,
		entry.CustomerID,
		entry.SupplierID,
		entry.Notes,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Scan(&entry.ID)
}

func (r *PgxLedgerRepository) SaveLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	if err := insertLedgerEntry(ctx, r.pool, entry); err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

const ledgerSelect = `
	SELECT l.id, l.tipo, l.descricao, l.valor, l.data_lancamento, l.data_vencimento, l.data_pagamento, l.status, l.categoria,
	       l.cliente_id, COALESCE(c.nome, ''), l.fornecedor_id, COALESCE(f.nome, ''), l.observacoes, l.created_at, l.updated_at
	FROM lancamentos_financeiros l
	LEFT JOIN clientes c ON c.id = l.cliente_id
	LEFT JOIN fornecedores f ON f.id = l.fornecedor_id
`

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := row.Scan(
		&e.ID,
		&e.Type,
		&e.Description,
		&e.Amount,
		&e.EntryDate,
		&e.DueDate,
		&e.PaymentDate,
		&e.Status,
		&e.Category,
		&e.CustomerID,
		&e.CustomerName,
		&e.SupplierID,
		&e.SupplierName,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxLedgerRepository) FindLedgerEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	entry, err := scanLedgerEntry(r.pool.QueryRow(ctx, ledgerSelect+` WHERE l.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry %d: %w", id, err)
	}
	return entry, nil
}

func (r *PgxLedgerRepository) ListLedgerEntries(ctx context.Context, entryType domain.LedgerType, status domain.LedgerStatus) ([]domain.LedgerEntry, error) {
	query := ledgerSelect
	conditions := ""
	args := []any{}
	if entryType != "" {
		args = append(args, entryType)
		conditions = fmt.Sprintf(` WHERE l.tipo = $%d`, len(args))
	}
	if status != "" {
		args = append(args, status)
		if conditions == "" {
			conditions = fmt.Sprintf(` WHERE l.status = $%d`, len(args))
		} else {
			conditions += fmt.Sprintf(` AND l.status = $%d`, len(args))
		}
	}
	query += conditions + ` ORDER BY l.data_vencimento DESC NULLS LAST, l.id DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *PgxLedgerRepository) UpdateLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	query := `
		UPDATE lancamentos_financeiros
		SET status = $2, observacoes = $3, data_pagamento = $4, updated_at = $5
		WHERE id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, entry.ID, entry.Status, entry.Notes, entry.PaymentDate, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %d: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteLedgerEntry(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lancamentos_financeiros WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SummarizeLedger aggregates every entry in one pass. Cancelled entries count
// toward neither bucket.
func (r *PgxLedgerRepository) SummarizeLedger(ctx context.Context) (*domain.FinancialSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'RECEITA' AND status = 'PENDENTE'), 0),
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'RECEITA' AND status = 'PAGO'), 0),
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'DESPESA' AND status = 'PENDENTE'), 0),
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'DESPESA' AND status = 'PAGO'), 0)
		FROM lancamentos_financeiros;
	`
	var summary domain.FinancialSummary
	err := r.pool.QueryRow(ctx, query).Scan(
		&summary.Revenues.Pending,
		&summary.Revenues.Paid,
		&summary.Expenses.Pending,
		&summary.Expenses.Paid,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ledger: %w", err)
	}
	summary.Revenues.Total = summary.Revenues.Pending.Add(summary.Revenues.Paid)
	summary.Expenses.Total = summary.Expenses.Pending.Add(summary.Expenses.Paid)
	summary.Balance = summary.Revenues.Paid.Sub(summary.Expenses.Paid)
	summary.ProjectedBalance = summary.Revenues.Total.Sub(summary.Expenses.Total)
	return &summary, nil
}
