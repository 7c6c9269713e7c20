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

func newReservation(userID int64, roomID string) *entity.Reservation {
	return &entity.Reservation{
		UserID:        userID,
		RoomID:        roomID,
		RoomName:      "City View Deluxe",
		PricePerNight: 100,
		CheckIn:       "2024-01-01",
		CheckOut:      "2024-01-04",
		Guests:        2,
		Nights:        3,
		TotalPrice:    300,
		Tax:           30,
		PaidAmount:    330,
		PaymentMethod: entity.PaymentMethodCard,
		PaymentStatus: entity.PaymentStatusCompleted,
	}
}

func TestReservationRepository_NewestFirst(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	first := newReservation(1, "r1")
	second := newReservation(2, "r2")
	require.NoError(t, repo.Reservation.Create(ctx, first))
	require.NoError(t, repo.Reservation.Create(ctx, second))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	all, err := repo.Reservation.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestReservationRepository_FindByUserID(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Reservation.Create(ctx, newReservation(1, "r1")))
	require.NoError(t, repo.Reservation.Create(ctx, newReservation(2, "r2")))
	require.NoError(t, repo.Reservation.Create(ctx, newReservation(1, "r3")))

	mine, err := repo.Reservation.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "r3", mine[0].RoomID)

	count, err := repo.Reservation.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	none, err := repo.Reservation.FindByUserID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReservationRepository_CancelRemovesExactlyOne(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	keep := newReservation(1, "r1")
	drop := newReservation(1, "r2")
	require.NoError(t, repo.Reservation.Create(ctx, keep))
	require.NoError(t, repo.Reservation.Create(ctx, drop))

	removed, err := repo.Reservation.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	count, _ := repo.Reservation.Count(ctx)
	assert.Equal(t, 1, count)

	found, _ := repo.Reservation.FindByID(ctx, drop.ID)
	assert.Nil(t, found)

	removed, err = repo.Reservation.Delete(ctx, "unknown-id")
	require.NoError(t, err)
	assert.False(t, removed)

	count, _ = repo.Reservation.Count(ctx)
	assert.Equal(t, 1, count)
}

func TestReservationRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	durable := storage.NewMemoryStore()

	first := repository.NewReservationRepository(ctx, newAdapter(durable), zap.NewNop())
	res := newReservation(7, "r1")
	res.CardBrand = "visa"
	res.CardLast4 = "1111"
	require.NoError(t, first.Create(ctx, res))

	second := repository.NewReservationRepository(ctx, newAdapter(durable), zap.NewNop())
	got, err := second.FindByID(ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, res.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = res.CreatedAt
	assert.Equal(t, *res, *got)
}

func TestReservationRepository_KeepsStateWhenStorageFails(t *testing.T) {
	ctx := context.Background()
	failing := storage.NewAdapter(failingStore{}, "hrs_", zap.NewNop())

	ledger := repository.NewReservationRepository(ctx, failing, zap.NewNop())
	require.NoError(t, ledger.Create(ctx, newReservation(1, "r1")))

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
