package invoices

import (
	"context"
	"fmt"
	"strconv"
	"strings"
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

func (r *StoreRepository) load(ctx context.Context) ([]models.Invoice, error) {
	return storage.LoadCollection[models.Invoice](ctx, r.store, storage.KeyInvoices)
}

func contains(list []models.Invoice, id int64) bool {
	for i := range list {
		if list[i].ID == id {
			return true
		}
	}
	return false
}

// counter returns the last issued invoice number. When the counter key is
// absent (store written before the counter existed), it is recovered from
// the highest suffix in the collection.
func (r *StoreRepository) counter(ctx context.Context, list []models.Invoice) (int, error) {
	raw, err := r.store.Get(ctx, storage.KeyInvoiceCounter)
	if err != nil {
		return 0, fmt.Errorf("failed to load invoice counter: %w", err)
	}
	if raw != nil {
		if n, err := strconv.Atoi(strings.TrimSpace(string(raw))); err == nil {
			return n, nil
		}
	}

	max := 0
	for i := range list {
		suffix, ok := strings.CutPrefix(list[i].InvoiceNumber, "INV-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	return max, nil
}

// FormatNumber renders a counter value as an invoice number.
func FormatNumber(n int) string {
	return fmt.Sprintf("INV-%03d", n)
}

func (r *StoreRepository) GetAll(ctx context.Context) ([]models.Invoice, error) {
	return r.load(ctx)
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			inv := list[i]
			return &inv, nil
		}
	}
	return nil, common.ErrorNotFound
}

// Create assigns the id and the next invoice number, then commits the
// collection and the counter in one atomic write.
func (r *StoreRepository) Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	last, err := r.counter(ctx, list)
	if err != nil {
		return nil, err
	}
	next := last + 1

	id := r.now().UnixMilli()
	for contains(list, id) {
		id++
	}
	inv.ID = id
	inv.InvoiceNumber = FormatNumber(next)

	list = append(list, *inv)
	raw, err := storage.EncodeCollection(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoices: %w", err)
	}

	err = r.store.SetMulti(ctx, map[string][]byte{
		storage.KeyInvoices:       raw,
		storage.KeyInvoiceCounter: []byte(strconv.Itoa(next)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save invoices: %w", err)
	}
	return inv, nil
}

func (r *StoreRepository) Update(ctx context.Context, id int64, inv *models.Invoice) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			inv.ID = id
			inv.InvoiceNumber = list[i].InvoiceNumber
			list[i] = *inv
			return storage.SaveCollection(ctx, r.store, storage.KeyInvoices, list)
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
	for _, inv := range list {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	return storage.SaveCollection(ctx, r.store, storage.KeyInvoices, kept)
}
