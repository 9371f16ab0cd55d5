package service

import (
	"context"
	"time"

	"fsanano/stockmgmt/internal/model"
)

// BillInput is a finalized bill as submitted by the storefront. Nothing in it
// is checked against the catalog; TotalAmount is stored as given.
type BillInput struct {
	Products    []model.BillItem `json:"products"`
	Name        string           `json:"name"`
	PhoneNumber string           `json:"phoneNumber"`
	Address     model.Address    `json:"address"`
	TotalAmount float64          `json:"totalAmount"`
	CreatedAt   *time.Time       `json:"createdAt"`
}

type HistoryService struct {
	bills BillStore
}

func NewHistoryService(bills BillStore) *HistoryService {
	return &HistoryService{bills: bills}
}

func (s *HistoryService) Record(ctx context.Context, in BillInput) (*model.Bill, error) {
	bill := &model.Bill{
		ID:          newID(),
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Products:    in.Products,
		TotalAmount: in.TotalAmount,
		CreatedAt:   now(),
	}
	if in.CreatedAt != nil {
		bill.CreatedAt = *in.CreatedAt
	}
	if bill.Products == nil {
		bill.Products = []model.BillItem{}
	}

	if err := s.bills.CreateBill(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *HistoryService) List(ctx context.Context) ([]model.Bill, error) {
	return s.bills.ListBills(ctx)
}
