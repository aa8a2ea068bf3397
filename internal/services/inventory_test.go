package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/products"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/storage"
)

func newInventoryService(t *testing.T) *InventoryService {
	t.Helper()
	return NewInventoryService(products.NewStoreRepository(storage.NewMemoryStore()))
}

func validProduct() *models.Product {
	return &models.Product{
		Name:          "Laptop Stand",
		SKU:           "LS-001",
		Category:      "Accessories",
		Price:         39.90,
		StockQuantity: 12,
		MinStockLevel: 4,
	}
}

func TestInventoryService_CreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newInventoryService(t)

	p := validProduct()
	p.MinStockLevel = 0
	created, err := svc.Create(ctx, p)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.DefaultMinStockLevel, created.MinStockLevel)

	bad := validProduct()
	bad.Price = -1
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestInventoryService_UpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newInventoryService(t)

	err := svc.Update(ctx, 7, validProduct())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInventoryService_Summary(t *testing.T) {
	ctx := context.Background()
	svc := newInventoryService(t)

	a := validProduct() // 12 * 39.90, not low
	_, err := svc.Create(ctx, a)
	require.NoError(t, err)

	b := validProduct()
	b.Name = "USB Cable"
	b.SKU = "UC-002"
	b.Category = "Cables"
	b.Price = 5
	b.StockQuantity = 3
	b.MinStockLevel = 3 // at the boundary counts as low
	_, err = svc.Create(ctx, b)
	require.NoError(t, err)

	c := validProduct()
	c.Name = "HDMI Cable"
	c.SKU = "HC-003"
	c.Category = "Cables"
	c.Price = 8
	c.StockQuantity = 0
	_, err = svc.Create(ctx, c)
	require.NoError(t, err)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.TotalProducts)
	assert.InDelta(t, 12*39.90+3*5, sum.TotalValue, 1e-9)
	assert.Equal(t, 2, sum.LowStockCount)
	assert.Equal(t, 2, sum.Categories)
}

func TestInventoryService_LowStock(t *testing.T) {
	ctx := context.Background()
	svc := newInventoryService(t)

	ok := validProduct()
	_, err := svc.Create(ctx, ok)
	require.NoError(t, err)

	low := validProduct()
	low.Name = "USB Cable"
	low.SKU = "UC-002"
	low.StockQuantity = 2
	low.MinStockLevel = 5
	_, err = svc.Create(ctx, low)
	require.NoError(t, err)

	list, err := svc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "USB Cable", list[0].Name)
}

func TestInventoryService_ListFiltersByQuery(t *testing.T) {
	ctx := context.Background()
	svc := newInventoryService(t)

	_, err := svc.Create(ctx, validProduct())
	require.NoError(t, err)

	b := validProduct()
	b.Name = "USB Cable"
	b.SKU = "UC-002"
	b.Category = "Cables"
	_, err = svc.Create(ctx, b)
	require.NoError(t, err)

	list, err := svc.List(ctx, "ls-0")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Laptop Stand", list[0].Name)
}
