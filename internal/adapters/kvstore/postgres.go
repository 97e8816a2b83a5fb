package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dkolev/gymtrack/internal/core/domain"
)

var _ domain.KVStore = (*Postgres)(nil)

// Postgres stores each document as one row in kv_documents.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the backing table if it does not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS kv_documents (
            key        TEXT PRIMARY KEY,
            doc        JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`

	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create kv_documents table: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT doc FROM kv_documents WHERE key = $1`

	var doc []byte
	err := p.db.QueryRowContext(ctx, query, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return doc, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := `
        INSERT INTO kv_documents (key, doc, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`

	_, err := p.db.ExecContext(ctx, query, key, value)
	if err != nil {
		// Class 53 is "insufficient resources" (disk full, too many
		// connections): the closest server-side analogue of a quota error.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Class() == "53" {
			return fmt.Errorf("%w: %v", domain.ErrStorageFull, err)
		}
		return fmt.Errorf("failed to upsert document %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_documents WHERE key = $1`

	if _, err := p.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}
