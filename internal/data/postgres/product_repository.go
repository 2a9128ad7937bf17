// Package postgres provides the PostgreSQL implementation of the product
// record store. Product ids are assigned by the database on insert.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/foodstock-inventory/internal/domain/catalog"
	"github.com/foodstock-inventory/internal/platform/persistence"
)

// ProductRepository implements the catalog.Repository interface for PostgreSQL
type ProductRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewProductRepository creates a new PostgreSQL product repository backed
// by the pool.
func NewProductRepository(logger *slog.Logger, db *persistence.PostgresDB) catalog.Repository {
	return &ProductRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// SelectAll returns every product in the store's natural return order.
func (r *ProductRepository) SelectAll(ctx context.Context) ([]catalog.Product, error) {
	query := `
		SELECT id, name, description, price, stock, created_at, updated_at
		FROM products
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to select products", "error", err)
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			r.logger.Error("Failed to scan product row", "error", err)
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to read product rows", "error", err)
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}

	return products, nil
}

// Insert stores a new product. The database assigns the id and the
// timestamps; the full inserted record is returned.
func (r *ProductRepository) Insert(ctx context.Context, fields catalog.Fields) (*catalog.Product, error) {
	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, stock, created_at, updated_at
	`

	var p catalog.Product
	err := r.querier.QueryRow(ctx, query,
		fields.Name,
		fields.Description,
		fields.Price,
		fields.Stock,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert product", "error", err)
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return &p, nil
}

// Update rewrites a product's fields keyed by id and returns the updated
// record. Returns ErrProductNotFound if no such product exists.
func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, fields catalog.Fields) (*catalog.Product, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, price, stock, created_at, updated_at
	`

	var p catalog.Product
	err := r.querier.QueryRow(ctx, query,
		id,
		fields.Name,
		fields.Description,
		fields.Price,
		fields.Stock,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrProductNotFound{ProductID: id}
		}
		r.logger.Error("Failed to update product", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// Delete removes a product by id. Returns ErrProductNotFound if no row
// was deleted.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM products
		WHERE id = $1
	`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete product", "id", id.String(), "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrProductNotFound{ProductID: id}
	}

	return nil
}
