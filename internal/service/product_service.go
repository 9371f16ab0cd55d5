package service

import (
	"context"
	"errors"

	"fsanano/stockmgmt/internal/apperr"
	"fsanano/stockmgmt/internal/model"
	"fsanano/stockmgmt/internal/repository"
)

// ProductInput carries the editable product fields. Stock and Price are
// pointers so that an explicit zero is distinguishable from a missing field.
type ProductInput struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Brand    string   `json:"brand"`
	Stock    *int     `json:"stock"`
	Price    *float64 `json:"price"`
	ImageURL string   `json:"imageUrl"`
}

func (in ProductInput) validate() error {
	if in.Name == "" || in.Type == "" || in.Brand == "" || in.Stock == nil || in.Price == nil {
		return apperr.New(apperr.KindValidation, "All product fields are required")
	}
	return nil
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := &model.Product{
		ID:        newID(),
		Name:      in.Name,
		Type:      in.Type,
		Brand:     in.Brand,
		Stock:     *in.Stock,
		Price:     *in.Price,
		ImageURL:  in.ImageURL,
		CreatedAt: now(),
	}
	if err := s.products.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces all editable fields of the product.
func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*model.Product, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "Product not found")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := &model.Product{
		ID:       id,
		Name:     in.Name,
		Type:     in.Type,
		Brand:    in.Brand,
		Stock:    *in.Stock,
		Price:    *in.Price,
		ImageURL: in.ImageURL,
	}
	if err := s.products.UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Product not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return apperr.New(apperr.KindNotFound, "Product not found")
	}
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.KindNotFound, "Product not found")
		}
		return err
	}
	return nil
}
