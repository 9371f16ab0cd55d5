package model

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Product struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Brand     string    `json:"brand"`
	Stock     int       `json:"stock"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Address is the shipping address attached to orders and bills.
type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Order is an active order for a single unit of a product. ProductName is
// copied from the product at placement time.
type Order struct {
	ID          string      `json:"_id"`
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phoneNumber"`
	Address     Address     `json:"address"`
	CreatedAt   time.Time   `json:"createdAt"`
	Status      OrderStatus `json:"status"`
}

type BillItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
}

// Bill is an archived order-history record. It is stored as submitted and
// never modified.
type Bill struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	Address     Address    `json:"address"`
	Products    []BillItem `json:"products"`
	TotalAmount float64    `json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type TypeStock struct {
	Type       string `json:"_id"`
	TotalStock int    `json:"totalStock"`
}

type TypeAvgPrice struct {
	Type     string  `json:"_id"`
	AvgPrice float64 `json:"avgPrice"`
}

type AnalyticsSummary struct {
	TotalStock     int            `json:"totalStock"`
	StockByType    []TypeStock    `json:"stockByType"`
	LowStock       []Product      `json:"lowStock"`
	TopStocked     []Product      `json:"topStocked"`
	AvgPriceByType []TypeAvgPrice `json:"avgPriceByType"`
}
