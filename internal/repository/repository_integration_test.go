//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"fsanano/stockmgmt/internal/model"
	"fsanano/stockmgmt/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) (*repository.Repository, *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("stockmgmt"),
		postgres.WithUsername("stock"),
		postgres.WithPassword("stock"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := repository.New(pool)
	require.NoError(t, repo.Migrate(ctx))
	// migrations are idempotent
	require.NoError(t, repo.Migrate(ctx))

	return repo, pool
}

func newProduct(name, typ string, stock int, price float64, createdAt time.Time) *model.Product {
	return &model.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      typ,
		Brand:     "Acme",
		Stock:     stock,
		Price:     price,
		CreatedAt: createdAt,
	}
}

func TestRepository_Integration(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("users", func(t *testing.T) {
		admin := &model.User{ID: uuid.NewString(), Username: "Admin", Email: "admin@stockmgmt.local", PasswordHash: "x", Role: model.RoleAdmin, CreatedAt: base}
		jane := &model.User{ID: uuid.NewString(), Username: "Jane", Email: "jane@example.com", PasswordHash: "y", Role: model.RoleCustomer, CreatedAt: base.Add(time.Second)}
		require.NoError(t, repo.CreateUser(ctx, admin))
		require.NoError(t, repo.CreateUser(ctx, jane))

		dup := *jane
		dup.ID = uuid.NewString()
		assert.ErrorIs(t, repo.CreateUser(ctx, &dup), repository.ErrDuplicate)

		got, err := repo.GetUserByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, jane.ID, got.ID)
		assert.Equal(t, model.RoleCustomer, got.Role)

		_, err = repo.GetUserByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		customers, err := repo.ListUsersExcludingRole(ctx, model.RoleAdmin)
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "jane@example.com", customers[0].Email)

		require.NoError(t, repo.DeleteUser(ctx, jane.ID))
		assert.ErrorIs(t, repo.DeleteUser(ctx, jane.ID), repository.ErrNotFound)
	})

	t.Run("products and analytics", func(t *testing.T) {
		total, err := repo.TotalStock(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, total)

		a := newProduct("A", "Phone", 5, 100, base)
		b := newProduct("B", "Laptop", 25, 1000, base.Add(time.Second))
		c := newProduct("C", "Phone", 25, 300, base.Add(2*time.Second))
		for _, p := range []*model.Product{a, b, c} {
			require.NoError(t, repo.CreateProduct(ctx, p))
		}

		total, err = repo.TotalStock(ctx)
		require.NoError(t, err)
		assert.Equal(t, 55, total)

		byType, err := repo.StockByType(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.TypeStock{{Type: "Phone", TotalStock: 30}, {Type: "Laptop", TotalStock: 25}}, byType)

		low, err := repo.ProductsBelowStock(ctx, 20)
		require.NoError(t, err)
		require.Len(t, low, 1)
		assert.Equal(t, a.ID, low[0].ID)

		top, err := repo.TopStockedProducts(ctx, 2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, b.ID, top[0].ID, "ties keep insertion order")
		assert.Equal(t, c.ID, top[1].ID)

		avgs, err := repo.AvgPriceByType(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.TypeAvgPrice{{Type: "Laptop", AvgPrice: 1000}, {Type: "Phone", AvgPrice: 200}}, avgs)

		a.Stock = 7
		a.ImageURL = "https://cdn.example.com/a.png"
		require.NoError(t, repo.UpdateProduct(ctx, a))
		assert.True(t, a.CreatedAt.Equal(base))

		missing := newProduct("X", "Phone", 1, 1, base)
		assert.ErrorIs(t, repo.UpdateProduct(ctx, missing), repository.ErrNotFound)
		assert.ErrorIs(t, repo.AdjustProductStock(ctx, missing.ID, 1), repository.ErrNotFound)

		require.NoError(t, repo.DeleteProduct(ctx, c.ID))
		assert.ErrorIs(t, repo.DeleteProduct(ctx, c.ID), repository.ErrNotFound)
	})

	t.Run("orders", func(t *testing.T) {
		order := &model.Order{
			ID:          uuid.NewString(),
			ProductID:   uuid.NewString(),
			ProductName: "Deleted product",
			Name:        "Jane",
			PhoneNumber: "5550100",
			Address:     model.Address{City: "Austin", State: "TX", Country: "US"},
			CreatedAt:   base,
			Status:      model.OrderStatusPlaced,
		}
		require.NoError(t, repo.CreateOrder(ctx, order), "orders do not require the product to exist")

		err := repo.RunAtomic(ctx, func(ctx context.Context) error {
			got, err := repo.GetOrderForUpdate(ctx, order.ID)
			require.NoError(t, err)
			assert.Equal(t, order.Address, got.Address)
			return repo.UpdateOrderStatus(ctx, order.ID, model.OrderStatusCancelled)
		})
		require.NoError(t, err)

		orders, err := repo.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, model.OrderStatusCancelled, orders[0].Status)
	})

	t.Run("bills", func(t *testing.T) {
		bill := &model.Bill{
			ID:          uuid.NewString(),
			Name:        "Jane",
			PhoneNumber: "5550100",
			Address:     model.Address{City: "Austin"},
			Products:    []model.BillItem{{ProductID: "p-1", ProductName: "Phone A", Price: 100}},
			TotalAmount: 100,
			CreatedAt:   base,
		}
		require.NoError(t, repo.CreateBill(ctx, bill))

		bills, err := repo.ListBills(ctx)
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, bill.Products, bills[0].Products)
		assert.Equal(t, bill.Address, bills[0].Address)
	})
}

func TestRunAtomic_RollsBack(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	p := newProduct("A", "Phone", 5, 100, time.Now())
	require.NoError(t, repo.CreateProduct(ctx, p))

	err := repo.RunAtomic(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.AdjustProductStock(ctx, p.ID, -1))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	got, err := repo.GetProductForUpdate(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
}
