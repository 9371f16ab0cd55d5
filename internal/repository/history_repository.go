package repository

import (
	"context"
	"fmt"

	"fsanano/stockmgmt/internal/model"

	"github.com/jackc/pgx/v5"
)

func (r *Repository) CreateBill(ctx context.Context, b *model.Bill) error {
	_, err := r.getExecutor(ctx).Exec(ctx,
		`INSERT INTO order_history (id, name, phone_number, address, products, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.Name, b.PhoneNumber, b.Address, b.Products, b.TotalAmount, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

func (r *Repository) ListBills(ctx context.Context) ([]model.Bill, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		`SELECT id, name, phone_number, address, products, total_amount, created_at
		FROM order_history ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	bills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Bill, error) {
		var b model.Bill
		err := row.Scan(&b.ID, &b.Name, &b.PhoneNumber, &b.Address, &b.Products, &b.TotalAmount, &b.CreatedAt)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bills: %w", err)
	}
	return bills, nil
}
