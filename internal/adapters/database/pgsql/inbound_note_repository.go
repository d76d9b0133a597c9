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
	"github.com/shopspring/decimal"
)

// PgxInboundNoteRepository persists inbound notes and their stock/ledger side
// effects via pgx.
type PgxInboundNoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgxInboundNoteRepository creates a new repository for inbound note data.
func NewPgxInboundNoteRepository(pool *pgxpool.Pool) portsrepo.InboundNoteRepository {
	return &PgxInboundNoteRepository{pool: pool}
}

// SaveInboundNote inserts the note header and items, then per item (in caller
// order): locks the product row, increments its stock, rewrites its cost price
// with the line price and appends the ENTRADA movement. The derived DESPESA
// ledger entry goes in last. Everything happens in one transaction, so a
// failure on any line leaves no stock or ledger change behind.
func (r *PgxInboundNoteRepository) SaveInboundNote(ctx context.Context, note *domain.InboundNote, ledgerEntry *domain.LedgerEntry) ([]domain.StockMovement, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	headerQuery := `
		INSERT INTO notas_entrada (numero, fornecedor_id, data_entrada, valor_total, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		note.Number,
		note.SupplierID,
		note.EntryDate,
		note.Total,
		note.Notes,
		note.CreatedAt,
		note.UpdatedAt,
	).Scan(&note.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert inbound note %s: %w", note.Number, err)
	}

	if err := insertDocumentItems(ctx, tx, "itens_nota_entrada", "nota_entrada_id", note.ID, note.Items); err != nil {
		return nil, fmt.Errorf("failed to insert items of inbound note %s: %w", note.Number, err)
	}

	movements := make([]domain.StockMovement, 0, len(note.Items))
	for _, item := range note.Items {
		var before decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT estoque_atual FROM produtos WHERE id = $1 FOR UPDATE;`, item.ProductID).
			Scan(&before)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to lock product %d: %w", item.ProductID, err)
		}

		after := before.Add(item.Quantity)

		_, err = tx.Exec(ctx,
			`UPDATE produtos SET estoque_atual = $2, preco_custo = $3, updated_at = $4 WHERE id = $1;`,
			item.ProductID, after, item.UnitPrice, note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update stock of product %d: %w", item.ProductID, err)
		}

		movement := domain.StockMovement{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Kind:         domain.MovementIn,
			Quantity:     item.Quantity,
			StockBefore:  before,
			StockAfter:   after,
			Reference:    note.Number,
			Notes:        fmt.Sprintf("Nota de Entrada #%s", note.Number),
			MovementDate: note.EntryDate,
			CreatedAt:    note.CreatedAt,
		}
		if err := insertStockMovement(ctx, tx, &movement); err != nil {
			return nil, fmt.Errorf("failed to insert movement for product %d: %w", item.ProductID, err)
		}
		movements = append(movements, movement)
	}

	if err := insertLedgerEntry(ctx, tx, ledgerEntry); err != nil {
		return nil, fmt.Errorf("failed to insert ledger entry of inbound note %s: %w", note.Number, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit inbound note %s: %w", note.Number, err)
	}
	return movements, nil
}

const inboundNoteSelect = `
	SELECT n.id, n.numero, n.fornecedor_id, f.nome, n.data_entrada, n.valor_total, n.observacoes, n.created_at, n.updated_at
	FROM notas_entrada n
	JOIN fornecedores f ON f.id = n.fornecedor_id
`

func scanInboundNote(row pgx.Row) (*domain.InboundNote, error) {
	var n domain.InboundNote
	err := row.Scan(
		&n.ID,
		&n.Number,
		&n.SupplierID,
		&n.SupplierName,
		&n.EntryDate,
		&n.Total,
		&n.Notes,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *PgxInboundNoteRepository) FindInboundNoteByID(ctx context.Context, id int64) (*domain.InboundNote, error) {
	note, err := scanInboundNote(r.pool.QueryRow(ctx, inboundNoteSelect+` WHERE n.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inbound note %d: %w", id, err)
	}

	items, err := loadDocumentItems(ctx, r.pool, "itens_nota_entrada", "nota_entrada_id", note.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items of inbound note %d: %w", id, err)
	}
	note.Items = items
	return note, nil
}

func (r *PgxInboundNoteRepository) ListInboundNotes(ctx context.Context) ([]domain.InboundNote, error) {
	rows, err := r.pool.Query(ctx, inboundNoteSelect+` ORDER BY n.id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbound notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.InboundNote
	for rows.Next() {
		note, err := scanInboundNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inbound note row: %w", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range notes {
		items, err := loadDocumentItems(ctx, r.pool, "itens_nota_entrada", "nota_entrada_id", notes[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load items of inbound note %d: %w", notes[i].ID, err)
		}
		notes[i].Items = items
	}
	return notes, nil
}

// DeleteInboundNote hard-deletes the note; items cascade. Stock movements and
// the ledger entry produced at creation are intentionally not reversed.
func (r *PgxInboundNoteRepository) DeleteInboundNote(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notas_entrada WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inbound note %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
