package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hotel-reservation/pkg/storage"
)

// Storage keys, relative to the adapter prefix.
const (
	keyRooms        = "rooms"
	keyReservations = "reservations"
	keyUsers        = "users"
	keySessionFmt   = "current_user:%s"
	keyDraftFmt     = "reservation_draft:%s"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type Repository struct {
	Room        RoomRepository
	Reservation ReservationRepository
	User        UserRepository
	Session     SessionRepository
	Draft       DraftRepository
}

// NewRepository loads every collection from durable. Drafts live on
// volatile, which is never shared with durable.
func NewRepository(ctx context.Context, durable, volatile *storage.Adapter, log *zap.Logger) *Repository {
	return &Repository{
		Room:        NewRoomRepository(ctx, durable, log),
		Reservation: NewReservationRepository(ctx, durable, log),
		User:        NewUserRepository(ctx, durable, log),
		Session:     NewSessionRepository(durable, log),
		Draft:       NewDraftRepository(volatile, log),
	}
}
