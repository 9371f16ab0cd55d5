package repository

import (
	"context"
	"errors"
	"fmt"

	"fsanano/stockmgmt/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = "id, username, email, phone_number, address, password_hash, role, created_at"

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PhoneNumber, &u.Address, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

// CreateUser inserts a new user. It returns ErrDuplicate if the email is taken.
func (r *Repository) CreateUser(ctx context.Context, u *model.User) error {
	_, err := r.getExecutor(ctx).Exec(ctx,
		"INSERT INTO users ("+userColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		u.ID, u.Username, u.Email, u.PhoneNumber, u.Address, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.getExecutor(ctx).QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// ListUsersExcludingRole returns every user whose role differs from role.
func (r *Repository) ListUsersExcludingRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE role <> $1 ORDER BY created_at, id", role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	return users, nil
}

func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	tag, err := r.getExecutor(ctx).Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
