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

// PgxCustomerRepository persists customers via pgx.
type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCustomerRepository creates a new repository for customer data.
func NewPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{pool: pool}
}

const customerColumns = `id, nome, cpf_cnpj, email, telefone, endereco, cidade, estado, cep, ativo, created_at, updated_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.CpfCnpj,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.City,
		&c.State,
		&c.ZipCode,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO clientes (nome, cpf_cnpj, email, telefone, endereco, cidade, estado, cep, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		customer.Name,
		customer.CpfCnpj,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.City,
		customer.State,
		customer.ZipCode,
		customer.Active,
		customer.CreatedAt,
		customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer with CPF/CNPJ %s already exists", apperrors.ErrDuplicate, customer.CpfCnpj)
		}
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE id = $1;`
	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %d: %w", id, err)
	}
	return customer, nil
}

func (r *PgxCustomerRepository) ListActiveCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE ativo = TRUE ORDER BY id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *customer)
	}
	return customers, rows.Err()
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE clientes
		SET nome = $2, cpf_cnpj = $3, email = $4, telefone = $5, endereco = $6, cidade = $7, estado = $8, cep = $9, updated_at = $10
		WHERE id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.CpfCnpj,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.City,
		customer.State,
		customer.ZipCode,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %d: %w", customer.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) DeactivateCustomer(ctx context.Context, id int64, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE clientes SET ativo = FALSE, updated_at = $2 WHERE id = $1;`, id, now)
	if err != nil {
		return fmt.Errorf("failed to deactivate customer %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
