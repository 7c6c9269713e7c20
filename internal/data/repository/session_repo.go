package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/storage"
)

// SessionRepository keeps one durable user copy per session token.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	FindByToken(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, token string) error
}

type sessionRepository struct {
	store *storage.Adapter
	log   *zap.Logger
}

func NewSessionRepository(store *storage.Adapter, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		store: store,
		log:   log.With(zap.String("repository", "session")),
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf(keySessionFmt, token)
}

// Save creates or overwrites the session under its token.
func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if session.Token == "" {
		return fmt.Errorf("save session: empty token")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	if !r.store.Write(ctx, sessionKey(session.Token), session) {
		return fmt.Errorf("save session for user %d: not stored", session.User.ID)
	}
	return nil
}

func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, nil
	}

	var session entity.Session
	if !r.store.Read(ctx, sessionKey(token), &session) {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	if r.store.Delete(ctx, sessionKey(token)) {
		r.log.Debug("Session removed")
	}
	return nil
}
