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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, query string, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context, query string) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type userRepository struct {
	mu    sync.RWMutex
	users []entity.User
	store *storage.Adapter
	log   *zap.Logger
}

func NewUserRepository(ctx context.Context, store *storage.Adapter, log *zap.Logger) UserRepository {
	r := &userRepository{
		store: store,
		log:   log.With(zap.String("repository", "user")),
	}

	if !store.Read(ctx, keyUsers, &r.users) {
		r.users = nil
	}
	r.log.Debug("Account directory loaded", zap.Int("users", len(r.users)))

	return r
}

func (r *userRepository) persist(ctx context.Context) {
	r.store.Write(ctx, keyUsers, r.users)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func (r *userRepository) indexByID(id int64) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *userRepository) indexByEmail(email string) int {
	email = normalizeEmail(email)
	for i := range r.users {
		if r.users[i].Email == email {
			return i
		}
	}
	return -1
}

func (r *userRepository) maxID() int64 {
	var max int64
	for _, u := range r.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max
}

// Create appends user to the directory. The email must not be taken.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = normalizeEmail(user.Email)
	if r.indexByEmail(user.Email) >= 0 {
		return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicate)
	}

	user.ID = utils.GenerateNumericID(r.maxID())
	user.Touch(time.Now().UTC())

	r.users = append(r.users, *user)
	r.persist(ctx)

	r.log.Info("User created", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByID(id)
	if i < 0 {
		return nil, nil
	}
	user := r.users[i]
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByEmail(email)
	if i < 0 {
		return nil, nil
	}
	user := r.users[i]
	return &user, nil
}

func matchesUser(u entity.User, query string) bool {
	if query == "" {
		return true
	}
	haystack := strings.ToLower(u.FirstName + " " + u.LastName + " " + u.Email)
	return strings.Contains(haystack, query)
}

// FindAll pages through the directory in registration order, optionally
// narrowed to users whose name or email contains query.
func (r *userRepository) FindAll(ctx context.Context, query string, limit, offset int) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	users := make([]*entity.User, 0)
	skipped := 0
	for _, u := range r.users {
		if !matchesUser(u, query) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(users) >= limit {
			break
		}
		users = append(users, &u)
	}
	return users, nil
}

func (r *userRepository) CountAll(ctx context.Context, query string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	var count int64
	for _, u := range r.users {
		if matchesUser(u, query) {
			count++
		}
	}
	return count, nil
}

// Update replaces the stored record with the same id.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(user.ID)
	if i < 0 {
		return fmt.Errorf("update user %d: %w", user.ID, ErrNotFound)
	}

	user.Email = normalizeEmail(user.Email)
	if j := r.indexByEmail(user.Email); j >= 0 && j != i {
		return fmt.Errorf("update user %d email %s: %w", user.ID, user.Email, ErrDuplicate)
	}

	user.CreatedAt = r.users[i].CreatedAt
	user.Touch(time.Now().UTC())
	r.users[i] = *user
	r.persist(ctx)

	r.log.Info("User updated", zap.Int64("user_id", user.ID))
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(id)
	if i < 0 {
		return false, nil
	}

	r.users = append(r.users[:i:i], r.users[i+1:]...)
	r.persist(ctx)

	r.log.Info("User deleted", zap.Int64("user_id", id))
	return true, nil
}
