package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/pkg/storage"
	"hotel-reservation/pkg/utils"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindAll(ctx context.Context) ([]*entity.Room, error)
	FindByID(ctx context.Context, id string) (*entity.Room, error)
	Search(ctx context.Context, filter entity.RoomFilter) ([]*entity.Room, error)
	Update(ctx context.Context, id string, patch entity.RoomPatch) (*entity.Room, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type roomRepository struct {
	mu    sync.RWMutex
	rooms []entity.Room
	store *storage.Adapter
	log   *zap.Logger
}

// DefaultRooms is the catalog used when storage holds none.
func DefaultRooms() []entity.Room {
	return []entity.Room{
		{
			ID:     "r1",
			Name:   "City View Deluxe",
			Type:   entity.RoomTypeDeluxe,
			Price:  129,
			Beds:   2,
			Guests: 3,
			Image:  "https://media.istockphoto.com/id/533338000/photo/interior-of-a-hotel-bedroom.webp?a=1&b=1&s=612x612&w=0&k=20&c=5G-nPW2oxTBWMljIGrr09eRiAn6LsWbFxE8EGsSNz6Q=",
		},
		{
			ID:     "r2",
			Name:   "Suite with Balcony",
			Type:   entity.RoomTypeSuite,
			Price:  229,
			Beds:   2,
			Guests: 4,
			Image:  "https://plus.unsplash.com/premium_photo-1681487479203-464a22302b27?w=500&auto=format&fit=crop&q=60",
		},
		{
			ID:     "r3",
			Name:   "Cozy Single Room",
			Type:   entity.RoomTypeSingle,
			Price:  79,
			Beds:   1,
			Guests: 1,
			Image:  "https://plus.unsplash.com/premium_photo-1678297270523-8775c817d0b3?w=500&auto=format&fit=crop&q=60",
		},
	}
}

func NewRoomRepository(ctx context.Context, store *storage.Adapter, log *zap.Logger) RoomRepository {
	r := &roomRepository{
		store: store,
		log:   log.With(zap.String("repository", "room")),
	}

	if !store.Read(ctx, keyRooms, &r.rooms) {
		now := time.Now().UTC()
		r.rooms = DefaultRooms()
		for i := range r.rooms {
			r.rooms[i].Touch(now)
		}
		r.log.Info("Room catalog seeded with defaults", zap.Int("rooms", len(r.rooms)))
	}

	return r
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// persist must be called with mu held for writing.
func (r *roomRepository) persist(ctx context.Context) {
	r.store.Write(ctx, keyRooms, r.rooms)
}

func (r *roomRepository) indexOf(id string) int {
	id = normalizeID(id)
	for i := range r.rooms {
		if normalizeID(r.rooms[i].ID) == id {
			return i
		}
	}
	return -1
}

func cloneRoom(room entity.Room) *entity.Room {
	room.Amenities = append([]string(nil), room.Amenities...)
	if len(room.Amenities) == 0 {
		room.Amenities = nil
	}
	return &room
}

// Create prepends room to the catalog, assigning an id when it has none.
func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room.ID = normalizeID(room.ID)
	if room.ID == "" {
		room.ID = utils.GenerateUUIDString()
	} else if r.indexOf(room.ID) >= 0 {
		return fmt.Errorf("create room %s: %w", room.ID, ErrDuplicate)
	}
	room.Touch(time.Now().UTC())

	r.rooms = append([]entity.Room{*cloneRoom(*room)}, r.rooms...)
	r.persist(ctx)

	r.log.Info("Room created", zap.String("room_id", room.ID), zap.String("name", room.Name))
	return nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*entity.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, cloneRoom(room))
	}
	return rooms, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*entity.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	return cloneRoom(r.rooms[i]), nil
}

func matchesRoom(room entity.Room, filter entity.RoomFilter) bool {
	if filter.Guests != nil && *filter.Guests > 0 && room.Guests < *filter.Guests {
		return false
	}
	if filter.Type != "" && filter.Type != entity.RoomTypeAny && string(room.Type) != filter.Type {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		haystack := strings.ToLower(room.Name + " " + string(room.Type) + " " + room.Description)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

// Search filters the catalog in catalog order.
func (r *roomRepository) Search(ctx context.Context, filter entity.RoomFilter) ([]*entity.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*entity.Room, 0)
	for _, room := range r.rooms {
		if matchesRoom(room, filter) {
			rooms = append(rooms, cloneRoom(room))
		}
	}
	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, id string, patch entity.RoomPatch) (*entity.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("update room %s: %w", id, ErrNotFound)
	}

	patch.Apply(&r.rooms[i])
	r.rooms[i].Touch(time.Now().UTC())
	r.persist(ctx)

	r.log.Info("Room updated", zap.String("room_id", r.rooms[i].ID))
	return cloneRoom(r.rooms[i]), nil
}

// Delete reports whether a room was removed. Reservations that reference
// it are left as they are.
func (r *roomRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}

	r.rooms = append(r.rooms[:i:i], r.rooms[i+1:]...)
	r.persist(ctx)

	r.log.Info("Room deleted", zap.String("room_id", normalizeID(id)))
	return true, nil
}

func (r *roomRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms), nil
}
