package products

import (
	"context"
	"fmt"
	"time"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/storage"
)

// StoreRepository implements Repository over a key-value Store.
type StoreRepository struct {
	store storage.Store
	now   func() time.Time
}

func NewStoreRepository(s storage.Store) *StoreRepository {
	return &StoreRepository{store: s, now: time.Now}
}

func (r *StoreRepository) load(ctx context.Context) ([]models.Product, error) {
	raw, err := r.store.Get(ctx, storage.KeyProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if raw == nil {
		// pre-rename key, read-only fallback
		raw, err = r.store.Get(ctx, storage.KeyProductsLegacy)
		if err != nil {
			return nil, fmt.Errorf("failed to load legacy products: %w", err)
		}
	}
	return storage.Decode[models.Product](raw), nil
}

func (r *StoreRepository) save(ctx context.Context, list []models.Product) error {
	return storage.SaveCollection(ctx, r.store, storage.KeyProducts, list)
}

func contains(list []models.Product, id int64) bool {
	for i := range list {
		if list[i].ID == id {
			return true
		}
	}
	return false
}

func (r *StoreRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.load(ctx)
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			p := list[i]
			return &p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *StoreRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	id := r.now().UnixMilli()
	for contains(list, id) {
		id++
	}
	p.ID = id

	list = append(list, *p)
	if err := r.save(ctx, list); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *StoreRepository) Update(ctx context.Context, id int64, p *models.Product) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			p.ID = id
			list[i] = *p
			return r.save(ctx, list)
		}
	}
	return common.ErrorNotFound
}

func (r *StoreRepository) DeleteByID(ctx context.Context, id int64) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.save(ctx, kept)
}
