package kvstore_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolev/gymtrack/internal/adapters/kvstore"
	"github.com/dkolev/gymtrack/internal/core/domain"
)

func connectTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "gymtrack_user"
	}
	pass := os.Getenv("DB_PASSWORD")
	if pass == "" {
		pass = "secret"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "gymtrack_db"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, name)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPostgres_Integration(t *testing.T) {
	ctx := context.Background()
	db := connectTestDB(t)

	store := kvstore.NewPostgres(db)
	require.NoError(t, store.EnsureSchema(ctx))

	key := "gym_test_doc"
	t.Cleanup(func() { _ = store.Delete(ctx, key) })

	t.Run("Fail: missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "gym_test_missing")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Success: upsert round trip", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte(`{"a":1}`)))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(got))

		// Overwrite under the same key.
		require.NoError(t, store.Set(ctx, key, []byte(`{"a":2}`)))
		got, err = store.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":2}`, string(got))
	})

	t.Run("Success: delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte(`{}`)))
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)

		// Deleting again is fine.
		assert.NoError(t, store.Delete(ctx, key))
	})
}
