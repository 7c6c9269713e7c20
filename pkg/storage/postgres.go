package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hotel-reservation/pkg/database"
)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		store_key   TEXT PRIMARY KEY,
		store_value TEXT NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// PostgresStore keeps every key as one row of kv_store.
type PostgresStore struct {
	db database.PgxIface
}

func NewPostgresStore(ctx context.Context, db database.PgxIface) (*PostgresStore, error) {
	if _, err := db.Exec(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("create kv_store table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT store_value FROM kv_store WHERE store_key = $1`

	var value string
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (store_key, store_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (store_key) DO UPDATE
		SET store_value = EXCLUDED.store_value, updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE store_key = $1`

	if _, err := s.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}
