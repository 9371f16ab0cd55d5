package repository

import (
	"context"
	"errors"
	"fmt"

	"fsanano/stockmgmt/internal/model"

	"github.com/jackc/pgx/v5"
)

const orderColumns = "id, product_id, product_name, name, phone_number, address, created_at, status"

func scanOrder(row pgx.Row) (model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.ProductID, &o.ProductName, &o.Name, &o.PhoneNumber, &o.Address, &o.CreatedAt, &o.Status)
	return o, err
}

func (r *Repository) CreateOrder(ctx context.Context, o *model.Order) error {
	_, err := r.getExecutor(ctx).Exec(ctx,
		"INSERT INTO orders ("+orderColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		o.ID, o.ProductID, o.ProductName, o.Name, o.PhoneNumber, o.Address, o.CreatedAt, o.Status)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.getExecutor(ctx).Query(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}
	return orders, nil
}

// GetOrderForUpdate locks the order row for the rest of the transaction.
func (r *Repository) GetOrderForUpdate(ctx context.Context, id string) (*model.Order, error) {
	row := r.getExecutor(ctx).QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1 FOR UPDATE", id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &o, nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	tag, err := r.getExecutor(ctx).Exec(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
