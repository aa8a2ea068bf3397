package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/storage"
)

func setupRepo(t *testing.T) (*StoreRepository, *storage.MemoryStore) {
	t.Helper()
	s := storage.NewMemoryStore()
	return NewStoreRepository(s), s
}

func TestGetAll_EmptyStore(t *testing.T) {
	r, _ := setupRepo(t)

	list, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetAll_FallsBackToLegacyKey(t *testing.T) {
	r, s := setupRepo(t)
	ctx := context.Background()

	legacy := `[{"id":7,"name":"Old Widget","sku":"OW-1","stockQuantity":3,"minStockLevel":5}]`
	require.NoError(t, s.Set(ctx, storage.KeyProductsLegacy, []byte(legacy)))

	list, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Old Widget", list[0].Name)

	// the legacy key must never be written
	raw, err := s.Get(ctx, storage.KeyProductsLegacy)
	require.NoError(t, err)
	assert.Equal(t, []byte(legacy), raw)
}

func TestGetAll_CurrentKeyWinsOverLegacy(t *testing.T) {
	r, s := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storage.KeyProductsLegacy, []byte(`[{"id":1,"name":"old"}]`)))
	require.NoError(t, s.Set(ctx, storage.KeyProducts, []byte(`[{"id":2,"name":"new"}]`)))

	list, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].Name)
}

func TestGetAll_EmptyCurrentKeyDoesNotFallBack(t *testing.T) {
	r, s := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storage.KeyProductsLegacy, []byte(`[{"id":1,"name":"old"}]`)))
	require.NoError(t, s.Set(ctx, storage.KeyProducts, []byte(`[]`)))

	list, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_WritesToCurrentKey(t *testing.T) {
	r, s := setupRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, &models.Product{Name: "Widget", SKU: "W-1"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	raw, err := s.Get(ctx, storage.KeyProducts)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Widget"`)

	raw, err = s.Get(ctx, storage.KeyProductsLegacy)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestUpdateAndDelete(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, &models.Product{Name: "Widget", SKU: "W-1", StockQuantity: 10})
	require.NoError(t, err)

	require.NoError(t, r.Update(ctx, created.ID, &models.Product{Name: "Widget v2", SKU: "W-1", StockQuantity: 4}))

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", got.Name)
	assert.Equal(t, 4, got.StockQuantity)

	require.ErrorIs(t, r.Update(ctx, 424242, &models.Product{Name: "X"}), common.ErrorNotFound)

	require.NoError(t, r.DeleteByID(ctx, created.ID))
	_, err = r.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
