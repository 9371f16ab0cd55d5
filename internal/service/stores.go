package service

import (
	"context"

	"fsanano/stockmgmt/internal/model"
)

// Atomic runs fn so that store calls made with its ctx commit or roll back together.
type Atomic interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsersExcludingRole(ctx context.Context, role model.Role) ([]model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id string) error
	GetProductForUpdate(ctx context.Context, id string) (*model.Product, error)
	AdjustProductStock(ctx context.Context, id string, delta int) error
}

type OrderStore interface {
	CreateOrder(ctx context.Context, o *model.Order) error
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrderForUpdate(ctx context.Context, id string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
}

type BillStore interface {
	CreateBill(ctx context.Context, b *model.Bill) error
	ListBills(ctx context.Context) ([]model.Bill, error)
}

type AnalyticsStore interface {
	TotalStock(ctx context.Context) (int, error)
	StockByType(ctx context.Context) ([]model.TypeStock, error)
	ProductsBelowStock(ctx context.Context, threshold int) ([]model.Product, error)
	TopStockedProducts(ctx context.Context, limit int) ([]model.Product, error)
	AvgPriceByType(ctx context.Context) ([]model.TypeAvgPrice, error)
}
