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
)

// PgxSupplierRepository persists suppliers via pgx.
type PgxSupplierRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSupplierRepository creates a new repository for supplier data.
func NewPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{pool: pool}
}

const supplierColumns = `id, nome, cnpj, email, telefone, endereco, cidade, estado, cep, ativo, created_at, updated_at`

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Cnpj,
		&s.Email,
		&s.Phone,
		&s.Address,
		&s.City,
		&s.State,
		&s.ZipCode,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		INSERT INTO fornecedores (nome, cnpj, email, telefone, endereco, cidade, estado, cep, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		supplier.Name,
		supplier.Cnpj,
		supplier.Email,
		supplier.Phone,
		supplier.Address,
		supplier.City,
		supplier.State,
		supplier.ZipCode,
		supplier.Active,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: supplier with CNPJ %s already exists", apperrors.ErrDuplicate, supplier.Cnpj)
		}
		return fmt.Errorf("failed to insert supplier: %w", err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM fornecedores WHERE id = $1;`
	supplier, err := scanSupplier(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %d: %w", id, err)
	}
	return supplier, nil
}

func (r *PgxSupplierRepository) ListActiveSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM fornecedores WHERE ativo = TRUE ORDER BY id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, *supplier)
	}
	return suppliers, rows.Err()
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE fornecedores
		SET nome = $2, cnpj = $3, email = $4, telefone = $5, endereco = $6, cidade = $7, estado = $8, cep = $9, updated_at = $10
		WHERE id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.Cnpj,
		supplier.Email,
		supplier.Phone,
		supplier.Address,
		supplier.City,
		supplier.State,
		supplier.ZipCode,
		supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %d: %w", supplier.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) DeactivateSupplier(ctx context.Context, id int64, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE fornecedores SET ativo = FALSE, updated_at = $2 WHERE id = $1;`, id, now)
	if err != nil {
		return fmt.Errorf("failed to deactivate supplier %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
