// Package storage is the key-value layer every persisted collection goes
// through. A Store moves raw bytes; the Adapter adds JSON encoding, a key
// namespace and best-effort failure handling on top.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Store.Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a flat key-value namespace.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key; a missing key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Load decodes the JSON value under key into dst. It reports false when
// the key is absent.
func Load(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save encodes v as JSON and stores it under key.
func Save(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Adapter namespaces keys and swallows storage failures. Callers keep their
// in-memory state authoritative; a failed write only costs durability.
type Adapter struct {
	store  Store
	prefix string
	log    *zap.Logger
}

func NewAdapter(store Store, prefix string, log *zap.Logger) *Adapter {
	return &Adapter{
		store:  store,
		prefix: prefix,
		log:    log.With(zap.String("component", "storage")),
	}
}

func (a *Adapter) key(k string) string {
	return a.prefix + k
}

// Read loads key into dst. Missing keys, backend errors and undecodable
// values all report false; the latter two are logged.
func (a *Adapter) Read(ctx context.Context, key string, dst any) bool {
	found, err := Load(ctx, a.store, a.key(key), dst)
	if err != nil {
		a.log.Warn("Failed to read from storage", zap.String("key", a.key(key)), zap.Error(err))
		return false
	}
	return found
}

// Write persists v under key and reports whether it succeeded.
func (a *Adapter) Write(ctx context.Context, key string, v any) bool {
	if err := Save(ctx, a.store, a.key(key), v); err != nil {
		a.log.Warn("Failed to persist to storage", zap.String("key", a.key(key)), zap.Error(err))
		return false
	}
	return true
}

// Delete removes key and reports whether it succeeded.
func (a *Adapter) Delete(ctx context.Context, key string) bool {
	if err := a.store.Remove(ctx, a.key(key)); err != nil {
		a.log.Warn("Failed to remove from storage", zap.String("key", a.key(key)), zap.Error(err))
		return false
	}
	return true
}

func (a *Adapter) Close() error {
	return a.store.Close()
}
