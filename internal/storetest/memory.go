// Package storetest provides an in-memory implementation of the service
// stores for tests that do not need PostgreSQL.
package storetest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"fsanano/stockmgmt/internal/model"
	"fsanano/stockmgmt/internal/repository"
)

// Memory keeps records in insertion order, which stands in for the
// database's default ordering. Fail, when set, is returned by every call.
type Memory struct {
	txMu sync.Mutex

	mu       sync.Mutex
	seq      int64
	users    []model.User
	products []model.Product
	orders   []model.Order
	bills    []model.Bill

	Fail error
}

func NewMemory() *Memory {
	return &Memory{}
}

// RunAtomic serializes fn against other RunAtomic calls. Writes are not
// rolled back when fn fails.
func (m *Memory) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx)
}

// stamp gives records with equal timestamps a stable insertion order.
func (m *Memory) stamp(t time.Time) time.Time {
	m.seq++
	if t.IsZero() {
		return time.Unix(0, m.seq).UTC()
	}
	return t
}

func (m *Memory) CreateUser(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.CreatedAt = m.stamp(u.CreatedAt)
	m.users = append(m.users, *u)
	return nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *Memory) ListUsersExcludingRole(_ context.Context, role model.Role) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	var out []model.User
	for _, u := range m.users {
		if u.Role != role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Memory) ListProducts(_ context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	return append([]model.Product(nil), m.products...), nil
}

func (m *Memory) CreateProduct(_ context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	p.CreatedAt = m.stamp(p.CreatedAt)
	m.products = append(m.products, *p)
	return nil
}

func (m *Memory) UpdateProduct(_ context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	i := m.productIndex(p.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	p.CreatedAt = m.products[i].CreatedAt
	m.products[i] = *p
	return nil
}

func (m *Memory) DeleteProduct(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	i := m.productIndex(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	m.products = append(m.products[:i], m.products[i+1:]...)
	return nil
}

func (m *Memory) GetProductForUpdate(_ context.Context, id string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	i := m.productIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	p := m.products[i]
	return &p, nil
}

func (m *Memory) AdjustProductStock(_ context.Context, id string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	i := m.productIndex(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	m.products[i].Stock += delta
	return nil
}

func (m *Memory) productIndex(id string) int {
	for i, p := range m.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) CreateOrder(_ context.Context, o *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	o.CreatedAt = m.stamp(o.CreatedAt)
	m.orders = append(m.orders, *o)
	return nil
}

func (m *Memory) ListOrders(_ context.Context) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	return append([]model.Order(nil), m.orders...), nil
}

func (m *Memory) GetOrderForUpdate(_ context.Context, id string) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	for _, o := range m.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *Memory) UpdateOrderStatus(_ context.Context, id string, status model.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Memory) CreateBill(_ context.Context, b *model.Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.bills = append(m.bills, *b)
	return nil
}

func (m *Memory) ListBills(_ context.Context) ([]model.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	return append([]model.Bill(nil), m.bills...), nil
}

func (m *Memory) TotalStock(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return 0, m.Fail
	}
	total := 0
	for _, p := range m.products {
		total += p.Stock
	}
	return total, nil
}

func (m *Memory) StockByType(_ context.Context) ([]model.TypeStock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	totals := make(map[string]int)
	for _, p := range m.products {
		totals[p.Type] += p.Stock
	}
	out := make([]model.TypeStock, 0, len(totals))
	for typ, total := range totals {
		out = append(out, model.TypeStock{Type: typ, TotalStock: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalStock != out[j].TotalStock {
			return out[i].TotalStock > out[j].TotalStock
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

func (m *Memory) ProductsBelowStock(_ context.Context, threshold int) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	var out []model.Product
	for _, p := range m.products {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Memory) TopStockedProducts(_ context.Context, limit int) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	out := append([]model.Product(nil), m.products...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stock > out[j].Stock })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) AvgPriceByType(_ context.Context) ([]model.TypeAvgPrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range m.products {
		sums[p.Type] += p.Price
		counts[p.Type]++
	}
	out := make([]model.TypeAvgPrice, 0, len(sums))
	for typ, sum := range sums {
		out = append(out, model.TypeAvgPrice{Type: typ, AvgPrice: sum / float64(counts[typ])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

// ProductStock returns the current stock of a product, for assertions.
func (m *Memory) ProductStock(id string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.productIndex(id)
	if i < 0 {
		return 0, false
	}
	return m.products[i].Stock, true
}

// ErrUnavailable is a convenient value for Fail.
var ErrUnavailable = errors.New("store unavailable")
