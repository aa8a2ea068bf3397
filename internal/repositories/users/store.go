package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/storage"
)

// StoreRepository implements Repository over a key-value Store.
type StoreRepository struct {
	store storage.Store
}

func NewStoreRepository(s storage.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) load(ctx context.Context) (map[string]models.User, error) {
	raw, err := r.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	registry := make(map[string]models.User)
	if len(raw) > 0 {
		// malformed registry reads as empty, same as the collections
		_ = json.Unmarshal(raw, &registry)
	}
	return registry, nil
}

func (r *StoreRepository) save(ctx context.Context, registry map[string]models.User) error {
	raw, err := json.Marshal(registry)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyUsers, raw); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (r *StoreRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	registry, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := registry[email]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	return &user, nil
}

func (r *StoreRepository) Create(ctx context.Context, email string, user *models.User) error {
	registry, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := registry[email]; ok {
		return common.ErrUserExists
	}
	registry[email] = *user
	return r.save(ctx, registry)
}

func (r *StoreRepository) GetAll(ctx context.Context) (map[string]models.User, error) {
	return r.load(ctx)
}
