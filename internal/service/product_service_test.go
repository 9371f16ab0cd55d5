package service_test

import (
	"context"
	"testing"

	"fsanano/stockmgmt/internal/apperr"
	"fsanano/stockmgmt/internal/service"
	"fsanano/stockmgmt/internal/storetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func productInput(name, typ string, stock int, price float64) service.ProductInput {
	return service.ProductInput{
		Name:  name,
		Type:  typ,
		Brand: "Acme",
		Stock: intPtr(stock),
		Price: floatPtr(price),
	}
}

func TestProductService_CreateAndList(t *testing.T) {
	svc := service.NewProductService(storetest.NewMemory())
	ctx := context.Background()

	a, err := svc.Create(ctx, productInput("Phone A", "Phone", 5, 199.99))
	require.NoError(t, err)
	_, err = svc.Create(ctx, productInput("Laptop B", "Laptop", 0, 999))
	require.NoError(t, err, "zero stock is a valid value")

	assert.NoError(t, uuid.Validate(a.ID))

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Phone A", products[0].Name)
	assert.Equal(t, 0, products[1].Stock)
}

func TestProductService_CreateValidation(t *testing.T) {
	svc := service.NewProductService(storetest.NewMemory())

	cases := map[string]func(in *service.ProductInput){
		"name":  func(in *service.ProductInput) { in.Name = "" },
		"type":  func(in *service.ProductInput) { in.Type = "" },
		"brand": func(in *service.ProductInput) { in.Brand = "" },
		"stock": func(in *service.ProductInput) { in.Stock = nil },
		"price": func(in *service.ProductInput) { in.Price = nil },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := productInput("Phone A", "Phone", 5, 10)
			mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.True(t, apperr.Is(err, apperr.KindValidation))
			assert.ErrorContains(t, err, "All product fields are required")
		})
	}
}

func TestProductService_Update(t *testing.T) {
	store := storetest.NewMemory()
	svc := service.NewProductService(store)
	ctx := context.Background()

	p, err := svc.Create(ctx, productInput("Phone A", "Phone", 5, 10))
	require.NoError(t, err)

	in := productInput("Phone A2", "Phone", 12, 15)
	in.ImageURL = "https://cdn.example.com/a2.png"
	updated, err := svc.Update(ctx, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "Phone A2", updated.Name)
	assert.Equal(t, 12, updated.Stock)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(ctx, uuid.NewString(), in)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.Update(ctx, "garbage", in)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestProductService_Delete(t *testing.T) {
	svc := service.NewProductService(storetest.NewMemory())
	ctx := context.Background()

	p, err := svc.Create(ctx, productInput("Phone A", "Phone", 5, 10))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	err = svc.Delete(ctx, p.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
