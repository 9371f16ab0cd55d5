package service

import (
	"context"
	"fmt"

	"fsanano/stockmgmt/internal/model"

	"golang.org/x/sync/errgroup"
)

const (
	LowStockThreshold = 20
	TopStockedLimit   = 5
)

// AnalyticsService computes catalog reports. Every call reads the store;
// nothing is cached.
type AnalyticsService struct {
	store AnalyticsStore
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

func (s *AnalyticsService) TotalStock(ctx context.Context) (int, error) {
	return s.store.TotalStock(ctx)
}

func (s *AnalyticsService) StockByType(ctx context.Context) ([]model.TypeStock, error) {
	return s.store.StockByType(ctx)
}

func (s *AnalyticsService) LowStock(ctx context.Context) ([]model.Product, error) {
	return s.store.ProductsBelowStock(ctx, LowStockThreshold)
}

func (s *AnalyticsService) TopStocked(ctx context.Context) ([]model.Product, error) {
	return s.store.TopStockedProducts(ctx, TopStockedLimit)
}

func (s *AnalyticsService) AvgPriceByType(ctx context.Context) ([]model.TypeAvgPrice, error) {
	return s.store.AvgPriceByType(ctx)
}

// Summary runs all reports concurrently.
func (s *AnalyticsService) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	var summary model.AnalyticsSummary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if summary.TotalStock, err = s.TotalStock(ctx); err != nil {
			return fmt.Errorf("total stock: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if summary.StockByType, err = s.StockByType(ctx); err != nil {
			return fmt.Errorf("stock by type: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if summary.LowStock, err = s.LowStock(ctx); err != nil {
			return fmt.Errorf("low stock: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if summary.TopStocked, err = s.TopStocked(ctx); err != nil {
			return fmt.Errorf("top stocked: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if summary.AvgPriceByType, err = s.AvgPriceByType(ctx); err != nil {
			return fmt.Errorf("average price by type: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}
