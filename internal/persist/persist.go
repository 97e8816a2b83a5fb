// Package persist provides the fail-soft JSON document layer on top of a
// domain.KVStore. Reads never fail: a missing key, an unreachable backend or a
// corrupted document all degrade to the caller's fallback. Writes are
// best-effort: a failed Set costs durability, never the in-memory mutation.
package persist

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dkolev/gymtrack/internal/core/domain"
)

// Load reads and decodes the document under key, returning fallback when the
// key is absent or the stored document cannot be used.
func Load[T any](ctx context.Context, store domain.KVStore, key string, fallback T) T {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			logrus.WithError(err).WithField("key", key).Warn("storage read failed, using fallback")
		}
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("corrupted document, using fallback")
		return fallback
	}
	return value
}

// Exists reports whether a document is stored under key. Used by seed logic,
// which must distinguish "never written" from "written as empty".
func Exists(ctx context.Context, store domain.KVStore, key string) bool {
	_, err := store.Get(ctx, key)
	return err == nil
}

// Save encodes value and writes it under key. Failures are logged and
// swallowed: the caller's state change already happened.
func Save(ctx context.Context, store domain.KVStore, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to encode document")
		return
	}
	if err := store.Set(ctx, key, raw); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage write failed, state kept in memory only")
	}
}

// Delete removes the document under key, logging failures.
func Delete(ctx context.Context, store domain.KVStore, key string) {
	if err := store.Delete(ctx, key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage delete failed")
	}
}
