// Package postgres implements a PostgreSQL-backed storage backend. State is
// a single row per key in the client_state table; the upsert makes the
// last-writer-wins overwrite semantics of the storage contract explicit.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/JuanoBQ/eCommerce-Template-sub001/pkg/errors"
)

// DB is the subset of pgxpool.Pool used by the backend. Declared as an
// interface so tests can substitute pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Backend implements storage.Backend using PostgreSQL.
type Backend struct {
	db DB
}

// New creates a PostgreSQL-backed storage backend.
func New(db DB) *Backend {
	return &Backend{db: db}
}

// Init creates the client_state table if it does not exist.
func (b *Backend) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS client_state (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	if _, err := b.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create client_state table: %w", err)
	}

	return nil
}

// Load retrieves the blob stored under key.
func (b *Backend) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT data FROM client_state WHERE key = $1`

	var data []byte
	if err := b.db.QueryRow(ctx, query, key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("state", key)
		}
		return nil, fmt.Errorf("select state: %w", err)
	}

	return data, nil
}

// Save overwrites the blob stored under key.
func (b *Backend) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO client_state (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	if _, err := b.db.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}

	return nil
}

// Delete removes the blob stored under key.
func (b *Backend) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM client_state WHERE key = $1`

	if _, err := b.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}

	return nil
}
