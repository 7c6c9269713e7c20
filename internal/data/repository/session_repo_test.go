package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/pkg/storage"
)

func TestSessionRepository_SaveFindDelete(t *testing.T) {
	repo, durable := setupRepository(t)
	ctx := context.Background()

	session := &entity.Session{Token: "tok-1", User: *newUser("a@example.com", "Ann")}
	require.NoError(t, repo.Session.Save(ctx, session))

	_, err := durable.Get(ctx, "hrs_current_user:tok-1")
	require.NoError(t, err, "sessions are durable")

	found, err := repo.Session.FindByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "a@example.com", found.User.Email)

	require.NoError(t, repo.Session.Delete(ctx, "tok-1"))
	found, err = repo.Session.FindByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepository_SaveFailsWhenNotStored(t *testing.T) {
	sessions := repository.NewSessionRepository(storage.NewAdapter(failingStore{}, "hrs_", zap.NewNop()), zap.NewNop())

	err := sessions.Save(context.Background(), &entity.Session{Token: "tok"})
	assert.Error(t, err)
}

func TestDraftRepository_SingleSlot(t *testing.T) {
	repo, durable := setupRepository(t)
	ctx := context.Background()

	empty, err := repo.Draft.Find(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, empty)

	require.NoError(t, repo.Draft.Save(ctx, "tok", &entity.ReservationDraft{RoomID: "r1", Nights: 2}))
	require.NoError(t, repo.Draft.Save(ctx, "tok", &entity.ReservationDraft{RoomID: "r2", Nights: 3}))

	_, err = durable.Get(ctx, "hrs_reservation_draft:tok")
	assert.ErrorIs(t, err, storage.ErrNotFound, "drafts never reach durable storage")

	draft, err := repo.Draft.Find(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "r2", draft.RoomID)

	// reading does not consume
	again, _ := repo.Draft.Find(ctx, "tok")
	assert.NotNil(t, again)

	require.NoError(t, repo.Draft.Delete(ctx, "tok"))
	gone, _ := repo.Draft.Find(ctx, "tok")
	assert.Nil(t, gone)
}

func TestDraftRepository_TakeIsExactlyOnce(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Draft.Save(ctx, "tok", &entity.ReservationDraft{RoomID: "r1"}))

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		taken int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := repo.Draft.Take(ctx, "tok")
			if err == nil && d != nil {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, taken)
}

func TestDraftRepository_SlotsArePerToken(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Draft.Save(ctx, "a", &entity.ReservationDraft{RoomID: "r1"}))
	require.NoError(t, repo.Draft.Save(ctx, "b", &entity.ReservationDraft{RoomID: "r2"}))

	a, _ := repo.Draft.Find(ctx, "a")
	b, _ := repo.Draft.Find(ctx, "b")
	assert.Equal(t, "r1", a.RoomID)
	assert.Equal(t, "r2", b.RoomID)
}
