package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthState, []byte(`{"isAuthenticated":true}`)))

	v, err := s.Get(ctx, KeyAuthState)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"isAuthenticated":true}`), v)
}

func TestMemoryStore_Get_AbsentReturnsNilNil(t *testing.T) {
	s := NewMemoryStore()

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_Get_ReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte(`abc`)))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	v2, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), v2)
}

func TestMemoryStore_SetMulti(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetMulti(ctx, map[string][]byte{"a": []byte(`1`), "b": []byte(`2`)}))

	v, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte(`2`), v)
}

func TestMemoryStore_DeleteAndClear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, s.Delete(ctx, "a"))

	v, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Set(ctx, "b", []byte(`2`)))
	require.NoError(t, s.Clear(ctx))

	v, err = s.Get(ctx, "b")
	require.NoError(t, err)
	require.Nil(t, v)
}
