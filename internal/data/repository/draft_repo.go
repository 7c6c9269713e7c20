package repository

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/storage"
)

// DraftRepository holds a single unpaid reservation per session token.
type DraftRepository interface {
	Save(ctx context.Context, token string, draft *entity.ReservationDraft) error
	Find(ctx context.Context, token string) (*entity.ReservationDraft, error)
	// Take returns the draft and clears the slot. At most one caller gets it.
	Take(ctx context.Context, token string) (*entity.ReservationDraft, error)
	Delete(ctx context.Context, token string) error
}

type draftRepository struct {
	mu    sync.Mutex
	store *storage.Adapter
	log   *zap.Logger
}

func NewDraftRepository(store *storage.Adapter, log *zap.Logger) DraftRepository {
	return &draftRepository{
		store: store,
		log:   log.With(zap.String("repository", "draft")),
	}
}

func draftKey(token string) string {
	return fmt.Sprintf(keyDraftFmt, token)
}

// Save overwrites whatever the slot held.
func (r *draftRepository) Save(ctx context.Context, token string, draft *entity.ReservationDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.store.Write(ctx, draftKey(token), draft) {
		return fmt.Errorf("save draft for room %s: not stored", draft.RoomID)
	}
	return nil
}

func (r *draftRepository) Find(ctx context.Context, token string) (*entity.ReservationDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.find(ctx, token), nil
}

func (r *draftRepository) find(ctx context.Context, token string) *entity.ReservationDraft {
	var draft entity.ReservationDraft
	if !r.store.Read(ctx, draftKey(token), &draft) {
		return nil
	}
	return &draft
}

func (r *draftRepository) Take(ctx context.Context, token string) (*entity.ReservationDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft := r.find(ctx, token)
	if draft == nil {
		return nil, nil
	}
	r.store.Delete(ctx, draftKey(token))
	return draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store.Delete(ctx, draftKey(token))
	return nil
}
