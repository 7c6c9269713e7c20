package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/pkg/storage"
)

func newAdapter(s storage.Store) *storage.Adapter {
	return storage.NewAdapter(s, "hrs_", zap.NewNop())
}

func setupRepository(t *testing.T) (*repository.Repository, *storage.MemoryStore) {
	t.Helper()
	durable := storage.NewMemoryStore()
	repo := repository.NewRepository(context.Background(), newAdapter(durable), newAdapter(storage.NewMemoryStore()), zap.NewNop())
	return repo, durable
}

func intPtr(v int) *int { return &v }

func TestRoomRepository_SeedsDefaults(t *testing.T) {
	repo, _ := setupRepository(t)

	rooms, err := repo.Room.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "r1", rooms[0].ID)
	assert.Equal(t, 129.0, rooms[0].Price)
	assert.Equal(t, "r3", rooms[2].ID)
}

func TestRoomRepository_SeedsDefaultsOnCorruptValue(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemoryStore()
	require.NoError(t, durable.Set(ctx, "hrs_rooms", []byte("not json")))

	rooms := repository.NewRoomRepository(ctx, newAdapter(durable), zap.NewNop())
	count, err := rooms.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRoomRepository_FindByIDNormalizes(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	room, err := repo.Room.FindByID(ctx, "  r2 ")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, "Suite with Balcony", room.Name)

	missing, err := repo.Room.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRoomRepository_Search(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter entity.RoomFilter
		want   []string
	}{
		{"no filter", entity.RoomFilter{}, []string{"r1", "r2", "r3"}},
		{"guests and type", entity.RoomFilter{Guests: intPtr(3), Type: "suite"}, []string{"r2"}},
		{"type any", entity.RoomFilter{Type: "any"}, []string{"r1", "r2", "r3"}},
		{"guests only", entity.RoomFilter{Guests: intPtr(3)}, []string{"r1", "r2"}},
		{"zero guests", entity.RoomFilter{Guests: intPtr(0)}, []string{"r1", "r2", "r3"}},
		{"no match", entity.RoomFilter{Guests: intPtr(5)}, []string{}},
		{"text query", entity.RoomFilter{Query: "BALCONY"}, []string{"r2"}},
		{"text matches type", entity.RoomFilter{Query: "single"}, []string{"r3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, err := repo.Room.Search(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(rooms))
			for _, r := range rooms {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRoomRepository_CreateUpdateDelete(t *testing.T) {
	repo, durable := setupRepository(t)
	ctx := context.Background()

	room := &entity.Room{Name: "Garden Double", Type: entity.RoomTypeDouble, Price: 99, Beds: 1, Guests: 2}
	require.NoError(t, repo.Room.Create(ctx, room))
	assert.NotEmpty(t, room.ID)

	rooms, _ := repo.Room.FindAll(ctx)
	require.Len(t, rooms, 4)
	assert.Equal(t, room.ID, rooms[0].ID, "new rooms go to the front")

	price := 109.0
	updated, err := repo.Room.Update(ctx, room.ID, entity.RoomPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 109.0, updated.Price)
	assert.Equal(t, "Garden Double", updated.Name)

	_, err = repo.Room.Update(ctx, "ghost", entity.RoomPatch{Price: &price})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err := repo.Room.Delete(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Room.Delete(ctx, room.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// the persisted snapshot follows every mutation
	reloaded := repository.NewRoomRepository(ctx, newAdapter(durable), zap.NewNop())
	count, _ := reloaded.Count(ctx)
	assert.Equal(t, 3, count)
}

func TestRoomRepository_CreateRejectsDuplicateID(t *testing.T) {
	repo, _ := setupRepository(t)

	err := repo.Room.Create(context.Background(), &entity.Room{ID: "r1", Name: "Copy"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestRoomRepository_ReturnsCopies(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	room, _ := repo.Room.FindByID(ctx, "r1")
	room.Price = 1

	again, _ := repo.Room.FindByID(ctx, "r1")
	assert.Equal(t, 129.0, again.Price)
}

func TestRoomRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemoryStore()

	first := repository.NewRoomRepository(ctx, newAdapter(durable), zap.NewNop())
	require.NoError(t, first.Create(ctx, &entity.Room{
		Name: "Loft", Type: entity.RoomTypeSuite, Price: 310.5, Beds: 2, Guests: 4,
		Amenities: []string{"WiFi", "Kitchen"},
	}))
	want, _ := first.FindAll(ctx)

	second := repository.NewRoomRepository(ctx, newAdapter(durable), zap.NewNop())
	got, _ := second.FindAll(ctx)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Amenities, got[i].Amenities)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}
