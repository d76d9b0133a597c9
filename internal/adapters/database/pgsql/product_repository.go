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

// PgxProductRepository persists products via pgx. Stock mutations do not
// happen here: they belong to the note/adjustment repositories, which lock the
// product row inside their transactions.
type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProductRepository creates a new repository for product data.
func NewPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{pool: pool}
}

const productColumns = `id, codigo, nome, descricao, unidade, preco_custo, preco_venda, estoque_minimo, estoque_atual, ativo, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.Unit,
		&p.CostPrice,
		&p.SalePrice,
		&p.MinimumStock,
		&p.CurrentStock,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO produtos (codigo, nome, descricao, unidade, preco_custo, preco_venda, estoque_minimo, estoque_atual, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		product.Code,
		product.Name,
		product.Description,
		product.Unit,
		product.CostPrice,
		product.SalePrice,
		product.MinimumStock,
		product.CurrentStock,
		product.Active,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product with code %s already exists", apperrors.ErrDuplicate, product.Code)
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE id = $1;`
	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %d: %w", id, err)
	}
	return product, nil
}

func (r *PgxProductRepository) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE ativo = TRUE ORDER BY id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

// UpdateProduct writes the descriptive fields and prices. estoque_atual is
// deliberately left out of the SET list.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE produtos
		SET codigo = $2, nome = $3, descricao = $4, unidade = $5, preco_custo = $6, preco_venda = $7, estoque_minimo = $8, updated_at = $9
		WHERE id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Code,
		product.Name,
		product.Description,
		product.Unit,
		product.CostPrice,
		product.SalePrice,
		product.MinimumStock,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeactivateProduct(ctx context.Context, id int64, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE produtos SET ativo = FALSE, updated_at = $2 WHERE id = $1;`, id, now)
	if err != nil {
		return fmt.Errorf("failed to deactivate product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
