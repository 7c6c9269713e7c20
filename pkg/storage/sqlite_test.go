package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/pkg/database"
	"hotel-reservation/pkg/storage"
)

func setupSQLiteStore(t *testing.T, path string) *storage.SQLiteStore {
	t.Helper()

	db, err := database.InitSQLite(context.Background(), path)
	require.NoError(t, err)

	s, err := storage.NewSQLiteStore(context.Background(), db)
	require.NoError(t, err)
	return s
}

func TestSQLiteStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	s := setupSQLiteStore(t, ":memory:")
	defer s.Close()

	_, err := s.Get(ctx, "hrs_rooms")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Set(ctx, "hrs_rooms", []byte(`[1]`)))
	require.NoError(t, s.Set(ctx, "hrs_rooms", []byte(`[1,2]`)))

	got, err := s.Get(ctx, "hrs_rooms")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}

func TestSQLiteStore_Remove(t *testing.T) {
	ctx := context.Background()
	s := setupSQLiteStore(t, ":memory:")
	defer s.Close()

	require.NoError(t, s.Set(ctx, "hrs_users", []byte(`[]`)))
	require.NoError(t, s.Remove(ctx, "hrs_users"))
	require.NoError(t, s.Remove(ctx, "hrs_users"))

	_, err := s.Get(ctx, "hrs_users")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "hotel.db")

	s := setupSQLiteStore(t, path)
	require.NoError(t, s.Set(ctx, "hrs_reservations", []byte(`[{"id":"x"}]`)))
	require.NoError(t, s.Close())

	reopened := setupSQLiteStore(t, path)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "hrs_reservations")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(got))
}
