package storage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/pkg/storage"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

// fakePgx interprets the handful of statements PostgresStore issues.
type fakePgx struct {
	rows    map[string]string
	execErr error
	closed  bool
}

func newFakePgx() *fakePgx {
	return &fakePgx{rows: make(map[string]string)}
}

func (f *fakePgx) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func (f *fakePgx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	sql = strings.TrimSpace(sql)
	switch {
	case strings.HasPrefix(sql, "CREATE TABLE"):
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	case strings.HasPrefix(sql, "INSERT"):
		f.rows[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.HasPrefix(sql, "DELETE"):
		delete(f.rows, args[0].(string))
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.CommandTag{}, errors.New("unexpected statement")
}

func (f *fakePgx) Ping(context.Context) error { return nil }
func (f *fakePgx) Close()                     { f.closed = true }

func TestPostgresStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	db := newFakePgx()

	s, err := storage.NewPostgresStore(ctx, db)
	require.NoError(t, err)

	_, err = s.Get(ctx, "hrs_rooms")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Set(ctx, "hrs_rooms", []byte(`[]`)))
	got, err := s.Get(ctx, "hrs_rooms")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Remove(ctx, "hrs_rooms"))
	assert.Empty(t, db.rows)

	require.NoError(t, s.Close())
	assert.True(t, db.closed)
}

func TestPostgresStore_TableCreationFails(t *testing.T) {
	db := newFakePgx()
	db.execErr = errors.New("permission denied")

	_, err := storage.NewPostgresStore(context.Background(), db)
	assert.ErrorContains(t, err, "create kv_store table")
}
