package service

import (
	"context"
	"errors"

	"fsanano/stockmgmt/internal/apperr"
	"fsanano/stockmgmt/internal/model"
	"fsanano/stockmgmt/internal/repository"
)

type PlaceOrderInput struct {
	ProductID   string         `json:"productId"`
	Name        string         `json:"name"`
	PhoneNumber string         `json:"phoneNumber"`
	Address     *model.Address `json:"address"`
}

type OrderService struct {
	tx       Atomic
	products ProductStore
	orders   OrderStore
}

func NewOrderService(tx Atomic, products ProductStore, orders OrderStore) *OrderService {
	return &OrderService{tx: tx, products: products, orders: orders}
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListOrders(ctx)
}

// Place records an order for one unit of the product and takes that unit out
// of stock. The stock check, the order insert and the decrement share one
// transaction with the product row locked, so concurrent placements can
// never sell more units than were in stock.
func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (*model.Order, error) {
	if in.ProductID == "" || in.Name == "" || in.PhoneNumber == "" || in.Address == nil {
		return nil, apperr.New(apperr.KindValidation, "Missing required fields")
	}
	productID, ok := canonicalID(in.ProductID)
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "Product not found")
	}

	var order *model.Order
	err := s.tx.RunAtomic(ctx, func(ctx context.Context) error {
		// 1. Lock product
		product, err := s.products.GetProductForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.New(apperr.KindNotFound, "Product not found")
			}
			return err
		}

		// 2. Check stock
		if product.Stock < 1 {
			return apperr.New(apperr.KindOutOfStock, "Product out of stock")
		}

		// 3. Create order
		order = &model.Order{
			ID:          newID(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Name:        in.Name,
			PhoneNumber: in.PhoneNumber,
			Address:     *in.Address,
			CreatedAt:   now(),
			Status:      model.OrderStatusPlaced,
		}
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return err
		}

		// 4. Decrement stock
		return s.products.AdjustProductStock(ctx, product.ID, -1)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel moves a placed order to Cancelled and returns its unit to stock.
// A product deleted since placement is skipped without failing the cancel.
func (s *OrderService) Cancel(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return apperr.New(apperr.KindNotFound, "Order not found")
	}

	return s.tx.RunAtomic(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.New(apperr.KindNotFound, "Order not found")
			}
			return err
		}

		if order.Status == model.OrderStatusCancelled {
			return apperr.New(apperr.KindAlreadyCancelled, "Order is already canceled")
		}

		if err := s.orders.UpdateOrderStatus(ctx, order.ID, model.OrderStatusCancelled); err != nil {
			return err
		}

		err = s.products.AdjustProductStock(ctx, order.ProductID, 1)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return nil
	})
}
