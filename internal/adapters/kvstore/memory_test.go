package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolev/gymtrack/internal/adapters/kvstore"
	"github.com/dkolev/gymtrack/internal/core/domain"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: set, get, delete", func(t *testing.T) {
		store := kvstore.NewMemory()

		require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`)))

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), got)

		require.NoError(t, store.Delete(ctx, "k"))
		_, err = store.Get(ctx, "k")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Fail: missing key", func(t *testing.T) {
		store := kvstore.NewMemory()
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Edge Case: deleting a missing key is not an error", func(t *testing.T) {
		store := kvstore.NewMemory()
		assert.NoError(t, store.Delete(ctx, "missing"))
	})

	t.Run("Edge Case: stored bytes are isolated from the caller", func(t *testing.T) {
		store := kvstore.NewMemory()

		value := []byte("original")
		require.NoError(t, store.Set(ctx, "k", value))
		value[0] = 'X'

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), got)

		got[0] = 'Y'
		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), again)
	})
}
