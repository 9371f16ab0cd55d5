package repository

import (
	"context"
	"fmt"

	"fsanano/stockmgmt/internal/model"

	"github.com/jackc/pgx/v5"
)

func (r *Repository) TotalStock(ctx context.Context) (int, error) {
	var total int
	err := r.getExecutor(ctx).QueryRow(ctx, "SELECT COALESCE(SUM(stock), 0) FROM products").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum stock: %w", err)
	}
	return total, nil
}

// StockByType sums stock per product type, largest total first.
func (r *Repository) StockByType(ctx context.Context) ([]model.TypeStock, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		"SELECT type, SUM(stock) AS total FROM products GROUP BY type ORDER BY total DESC, type")
	if err != nil {
		return nil, fmt.Errorf("failed to group stock by type: %w", err)
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.TypeStock, error) {
		var ts model.TypeStock
		err := row.Scan(&ts.Type, &ts.TotalStock)
		return ts, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stock by type: %w", err)
	}
	return totals, nil
}

// ProductsBelowStock returns products whose stock is strictly below threshold.
func (r *Repository) ProductsBelowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE stock < $1 ORDER BY created_at, id", threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return collectProducts(rows)
}

// TopStockedProducts returns up to limit products by descending stock. Ties
// keep insertion order.
func (r *Repository) TopStockedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY stock DESC, created_at, id LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top stocked products: %w", err)
	}
	return collectProducts(rows)
}

func (r *Repository) AvgPriceByType(ctx context.Context) ([]model.TypeAvgPrice, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		"SELECT type, AVG(price) FROM products GROUP BY type ORDER BY type")
	if err != nil {
		return nil, fmt.Errorf("failed to average price by type: %w", err)
	}
	avgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.TypeAvgPrice, error) {
		var tp model.TypeAvgPrice
		err := row.Scan(&tp.Type, &tp.AvgPrice)
		return tp, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan average prices: %w", err)
	}
	return avgs, nil
}
