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

// PgxOutboundNoteRepository persists outbound notes and their stock side
// effects via pgx.
type PgxOutboundNoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgxOutboundNoteRepository creates a new repository for outbound note data.
func NewPgxOutboundNoteRepository(pool *pgxpool.Pool) portsrepo.OutboundNoteRepository {
	return &PgxOutboundNoteRepository{pool: pool}
}

// SaveOutboundNote inserts the note header and items, then per item (in caller
// order): locks the product row, re-checks the available stock and decrements
// it, appending the SAIDA movement. The re-check under lock is what closes the
// oversell race between concurrent notes that both passed service-level
// validation: the loser of the lock sees the decremented stock and the whole
// transaction rolls back with an InsufficientStockError. A linked sales order
// is flipped to FATURADO as the final step.
func (r *PgxOutboundNoteRepository) SaveOutboundNote(ctx context.Context, note *domain.OutboundNote) ([]domain.StockMovement, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	headerQuery := `
		INSERT INTO notas_saida (numero, cliente_id, pedido_venda_id, data_saida, valor_total, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		note.Number,
		note.CustomerID,
		note.SalesOrderID,
		note.ExitDate,
		note.Total,
		note.Notes,
		note.CreatedAt,
		note.UpdatedAt,
	).Scan(&note.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert outbound note %s: %w", note.Number, err)
	}

	if err := insertDocumentItems(ctx, tx, "itens_nota_saida", "nota_saida_id", note.ID, note.Items); err != nil {
		return nil, fmt.Errorf("failed to insert items of outbound note %s: %w", note.Number, err)
	}

	movements := make([]domain.StockMovement, 0, len(note.Items))
	for _, item := range note.Items {
		var productName string
		var before decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT nome, estoque_atual FROM produtos WHERE id = $1 FOR UPDATE;`, item.ProductID).
			Scan(&productName, &before)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to lock product %d: %w", item.ProductID, err)
		}

		if before.LessThan(item.Quantity) {
			return nil, &apperrors.InsufficientStockError{
				ProductName: productName,
				Available:   before,
				Requested:   item.Quantity,
			}
		}
		after := before.Sub(item.Quantity)

		_, err = tx.Exec(ctx,
			`UPDATE produtos SET estoque_atual = $2, updated_at = $3 WHERE id = $1;`,
			item.ProductID, after, note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update stock of product %d: %w", item.ProductID, err)
		}

		movement := domain.StockMovement{
			ProductID:    item.ProductID,
			ProductName:  productName,
			Kind:         domain.MovementOut,
			Quantity:     item.Quantity,
			StockBefore:  before,
			StockAfter:   after,
			Reference:    note.Number,
			Notes:        fmt.Sprintf("Nota de Saída #%s", note.Number),
			MovementDate: note.ExitDate,
			CreatedAt:    note.CreatedAt,
		}
		if err := insertStockMovement(ctx, tx, &movement); err != nil {
			return nil, fmt.Errorf("failed to insert movement for product %d: %w", item.ProductID, err)
		}
		movements = append(movements, movement)
	}

	if note.SalesOrderID != nil {
		tag, err := tx.Exec(ctx,
			`UPDATE pedidos_venda SET status = $2, updated_at = $3 WHERE id = $1;`,
			*note.SalesOrderID, domain.OrderFulfilled, note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to fulfil sales order %d: %w", *note.SalesOrderID, err)
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("pedido %d: %w", *note.SalesOrderID, apperrors.ErrNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit outbound note %s: %w", note.Number, err)
	}
	return movements, nil
}

const outboundNoteSelect = `
	SELECT n.id, n.numero, n.cliente_id, c.nome, n.pedido_venda_id, n.data_saida, n.valor_total, n.observacoes, n.created_at, n.updated_at
	FROM notas_saida n
	JOIN clientes c ON c.id = n.cliente_id
`

func scanOutboundNote(row pgx.Row) (*domain.OutboundNote, error) {
	var n domain.OutboundNote
	err := row.Scan(
		&n.ID,
		&n.Number,
		&n.CustomerID,
		&n.CustomerName,
		&n.SalesOrderID,
		&n.ExitDate,
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

func (r *PgxOutboundNoteRepository) FindOutboundNoteByID(ctx context.Context, id int64) (*domain.OutboundNote, error) {
	note, err := scanOutboundNote(r.pool.QueryRow(ctx, outboundNoteSelect+` WHERE n.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find outbound note %d: %w", id, err)
	}

	items, err := loadDocumentItems(ctx, r.pool, "itens_nota_saida", "nota_saida_id", note.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items of outbound note %d: %w", id, err)
	}
	note.Items = items
	return note, nil
}

func (r *PgxOutboundNoteRepository) ListOutboundNotes(ctx context.Context) ([]domain.OutboundNote, error) {
	rows, err := r.pool.Query(ctx, outboundNoteSelect+` ORDER BY n.id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list outbound notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.OutboundNote
	for rows.Next() {
		note, err := scanOutboundNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbound note row: %w", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range notes {
		items, err := loadDocumentItems(ctx, r.pool, "itens_nota_saida", "nota_saida_id", notes[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load items of outbound note %d: %w", notes[i].ID, err)
		}
		notes[i].Items = items
	}
	return notes, nil
}

// DeleteOutboundNote hard-deletes the note; items cascade. The SAIDA movements
// it produced are intentionally not reversed.
func (r *PgxOutboundNoteRepository) DeleteOutboundNote(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notas_saida WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete outbound note %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
