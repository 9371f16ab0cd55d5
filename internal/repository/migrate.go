package repository

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone_number TEXT NOT NULL,
		address TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'customer',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)`,

	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		brand TEXT NOT NULL,
		stock INTEGER NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_type ON products(type)`,
	`CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock)`,

	// product_id has no foreign key: deleting a product leaves its orders intact.
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL,
		product_name TEXT NOT NULL,
		name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		address JSONB NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Placed',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_product_id ON orders(product_id)`,

	`CREATE TABLE IF NOT EXISTS order_history (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL DEFAULT '',
		address JSONB NOT NULL,
		products JSONB NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the schema if it does not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	for _, migration := range migrations {
		if _, err := r.db.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
