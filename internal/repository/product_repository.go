package repository

import (
	"context"
	"errors"
	"fmt"

	"fsanano/stockmgmt/internal/model"

	"github.com/jackc/pgx/v5"
)

const productColumns = "id, name, type, brand, stock, price, image_url, created_at"

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Brand, &p.Stock, &p.Price, &p.ImageURL, &p.CreatedAt)
	return p, err
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

func (r *Repository) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.getExecutor(ctx).Query(ctx, "SELECT "+productColumns+" FROM products ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return collectProducts(rows)
}

func (r *Repository) CreateProduct(ctx context.Context, p *model.Product) error {
	_, err := r.getExecutor(ctx).Exec(ctx,
		"INSERT INTO products ("+productColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		p.ID, p.Name, p.Type, p.Brand, p.Stock, p.Price, p.ImageURL, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct replaces the editable fields of p and refreshes p from the
// stored row.
func (r *Repository) UpdateProduct(ctx context.Context, p *model.Product) error {
	row := r.getExecutor(ctx).QueryRow(ctx,
		`UPDATE products SET name = $1, type = $2, brand = $3, stock = $4, price = $5, image_url = $6
		WHERE id = $7 RETURNING `+productColumns,
		p.Name, p.Type, p.Brand, p.Stock, p.Price, p.ImageURL, p.ID)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	*p = updated
	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	tag, err := r.getExecutor(ctx).Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProductForUpdate locks the product row for the rest of the transaction.
func (r *Repository) GetProductForUpdate(ctx context.Context, id string) (*model.Product, error) {
	row := r.getExecutor(ctx).QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1 FOR UPDATE", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// AdjustProductStock adds delta to the product's stock.
func (r *Repository) AdjustProductStock(ctx context.Context, id string, delta int) error {
	tag, err := r.getExecutor(ctx).Exec(ctx, "UPDATE products SET stock = stock + $1 WHERE id = $2", delta, id)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
