package customers

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

// demoCustomers seed an empty installation so a first run has data to show.
func demoCustomers(now time.Time) []models.Customer {
	base := now.UnixMilli()
	return []models.Customer{
		{
			ID:          base,
			Name:        "John Smith",
			Address:     "123 Main St, Anytown, USA 12345",
			Email:       "john@example.com",
			Phone:       "(555) 123-4567",
			Company:     "Tech Solutions Inc.",
			TotalOrders: 5,
			LastOrder:   "2024-09-20",
		},
		{
			ID:          base + 1,
			Name:        "Sarah Johnson",
			Address:     "456 Oak Ave, Another City, USA 67890",
			Email:       "sarah@example.com",
			Phone:       "(555) 987-6543",
			Company:     "Design Studio",
			TotalOrders: 3,
			LastOrder:   "2024-09-18",
		},
	}
}

// load returns the collection, seeding demo data when the key is absent and
// migrating legacy records (no id) to the canonical schema. Migration writes
// back immediately so assigned ids are stable across calls.
func (r *StoreRepository) load(ctx context.Context) ([]models.Customer, error) {
	raw, err := r.store.Get(ctx, storage.KeyCustomers)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	if raw == nil {
		seeded := demoCustomers(r.now())
		if err := storage.SaveCollection(ctx, r.store, storage.KeyCustomers, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	list := storage.Decode[models.Customer](raw)

	migrated := false
	nextID := r.now().UnixMilli()
	for i := range list {
		if list[i].ID != 0 {
			continue
		}
		for contains(list, nextID) {
			nextID++
		}
		list[i].ID = nextID
		nextID++
		migrated = true
	}
	if migrated {
		if err := storage.SaveCollection(ctx, r.store, storage.KeyCustomers, list); err != nil {
			return nil, err
		}
	}

	return list, nil
}

func contains(list []models.Customer, id int64) bool {
	for i := range list {
		if list[i].ID == id {
			return true
		}
	}
	return false
}

func (r *StoreRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	return r.load(ctx)
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			c := list[i]
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *StoreRepository) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	id := r.now().UnixMilli()
	for contains(list, id) {
		id++
	}
	c.ID = id

	list = append(list, *c)
	if err := storage.SaveCollection(ctx, r.store, storage.KeyCustomers, list); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *StoreRepository) Update(ctx context.Context, id int64, c *models.Customer) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			c.ID = id
			list[i] = *c
			return storage.SaveCollection(ctx, r.store, storage.KeyCustomers, list)
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
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return storage.SaveCollection(ctx, r.store, storage.KeyCustomers, kept)
}
