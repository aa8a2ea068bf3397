package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Decode unmarshals a stored JSON array. Malformed data reads as an empty
// collection rather than an error, so one bad value cannot take every
// screen down with it.
func Decode[T any](raw []byte) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// LoadCollection reads and decodes the collection stored under key. A
// missing key reads as an empty collection.
func LoadCollection[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", key, err)
	}
	return Decode[T](raw), nil
}

// EncodeCollection marshals a collection to its stored JSON form.
func EncodeCollection[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// SaveCollection overwrites the collection stored under key.
func SaveCollection[T any](ctx context.Context, s Store, key string, items []T) error {
	raw, err := EncodeCollection(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}
