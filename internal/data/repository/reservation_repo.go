package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/storage"
	"hotel-reservation/pkg/utils"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	FindByID(ctx context.Context, id string) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Reservation, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// reservationRepository keeps the ledger newest first.
type reservationRepository struct {
	mu           sync.RWMutex
	reservations []entity.Reservation
	store        *storage.Adapter
	log          *zap.Logger
}

func NewReservationRepository(ctx context.Context, store *storage.Adapter, log *zap.Logger) ReservationRepository {
	r := &reservationRepository{
		store: store,
		log:   log.With(zap.String("repository", "reservation")),
	}

	if !store.Read(ctx, keyReservations, &r.reservations) {
		r.reservations = nil
	}
	r.log.Debug("Reservation ledger loaded", zap.Int("reservations", len(r.reservations)))

	return r
}

func (r *reservationRepository) persist(ctx context.Context) {
	r.store.Write(ctx, keyReservations, r.reservations)
}

func (r *reservationRepository) indexOf(id string) int {
	id = normalizeID(id)
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			return i
		}
	}
	return -1
}

// Create assigns a time-ordered id and prepends the record.
func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reservation.ID == "" {
		reservation.ID = utils.GenerateTimeOrderedID()
	} else if r.indexOf(reservation.ID) >= 0 {
		return fmt.Errorf("create reservation %s: %w", reservation.ID, ErrDuplicate)
	}
	if reservation.CreatedAt.IsZero() {
		reservation.CreatedAt = time.Now().UTC()
	}

	r.reservations = append([]entity.Reservation{*reservation}, r.reservations...)
	r.persist(ctx)

	r.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID),
		zap.Int64("user_id", reservation.UserID),
		zap.String("room_id", reservation.RoomID),
	)
	return nil
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservations := make([]*entity.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		reservations = append(reservations, &res)
	}
	return reservations, nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id string) (*entity.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	res := r.reservations[i]
	return &res, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservations := make([]*entity.Reservation, 0)
	for _, res := range r.reservations {
		if res.UserID == userID {
			reservations = append(reservations, &res)
		}
	}
	return reservations, nil
}

func (r *reservationRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, res := range r.reservations {
		if res.UserID == userID {
			count++
		}
	}
	return count, nil
}

// Delete removes the reservation outright. An unknown id is a no-op.
func (r *reservationRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	removed := r.reservations[i]

	r.reservations = append(r.reservations[:i:i], r.reservations[i+1:]...)
	r.persist(ctx)

	r.log.Info("Reservation cancelled",
		zap.String("reservation_id", removed.ID),
		zap.Int64("user_id", removed.UserID),
		zap.Float64("total_price", removed.TotalPrice),
		zap.Float64("paid_amount", removed.PaidAmount),
	)
	return true, nil
}

func (r *reservationRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reservations), nil
}
