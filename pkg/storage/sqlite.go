package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type kvRecord struct {
	bun.BaseModel `bun:"table:kv_store"`

	Key       string    `bun:"store_key,pk"`
	Value     string    `bun:"store_value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// SQLiteStore keeps every key as one row of kv_store.
type SQLiteStore struct {
	db *bun.DB
}

// NewSQLiteStore creates kv_store if needed.
func NewSQLiteStore(ctx context.Context, db *bun.DB) (*SQLiteStore, error) {
	_, err := db.NewCreateTable().
		Model((*kvRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("create kv_store table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec kvRecord
	err := s.db.NewSelect().
		Model(&rec).
		Where("store_key = ?", key).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(rec.Value), nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	rec := &kvRecord{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (store_key) DO UPDATE").
		Set("store_value = EXCLUDED.store_value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.NewDelete().
		Model((*kvRecord)(nil)).
		Where("store_key = ?", key).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
