package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/utils"
)

type UserService interface {
	GetProfile(ctx context.Context, token string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, token string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)

	// admin
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, actorID, userID int64) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) sessionOf(ctx context.Context, token string) (*entity.Session, error) {
	session, err := us.repo.Session.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, ErrUserNotFound
	}
	return session, nil
}

// GetProfile reads the session's copy of the user together with their
// booking totals.
func (us *userService) GetProfile(ctx context.Context, token string) (*response.ProfileResponse, error) {
	session, err := us.sessionOf(ctx, token)
	if err != nil {
		return nil, err
	}
	return us.buildProfile(ctx, &session.User)
}

// UpdateProfile edits the directory record and then re-saves the session
// copy, which is not refreshed otherwise.
func (us *userService) UpdateProfile(ctx context.Context, token string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Load directory record
	session, err := us.sessionOf(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := us.repo.User.FindByID(ctx, session.User.ID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", session.User.ID))
		return nil, fmt.Errorf("find user %d: %w", session.User.ID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 3. Apply and store
	entity.ProfilePatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		ZipCode:   req.ZipCode,
	}.Apply(user)

	if err := us.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		us.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("update user %d: %w", user.ID, err)
	}

	// 4. Refresh session copy
	session.User = *user
	if err := us.repo.Session.Save(ctx, session); err != nil {
		us.log.Warn("Failed to refresh session copy", zap.Error(err), zap.Int64("user_id", user.ID))
	}

	us.log.Info("Profile updated", zap.Int64("user_id", user.ID))
	return us.buildProfile(ctx, user)
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	users, err := us.repo.User.FindAll(ctx, req.Query, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.repo.User.CountAll(ctx, req.Query)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	data := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, response.UserToResponse(u))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total, req.Query), nil
}

// DeleteUser removes an account. Their reservations stay in the ledger.
func (us *userService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	if actorID == userID {
		return fmt.Errorf("%w: cannot delete your own account", ErrForbidden)
	}

	deleted, err := us.repo.User.Delete(ctx, userID)
	if err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (us *userService) buildProfile(ctx context.Context, user *entity.User) (*response.ProfileResponse, error) {
	reservations, err := us.repo.Reservation.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list reservations for user %d: %w", user.ID, err)
	}

	var spent float64
	for _, r := range reservations {
		spent += r.PaidAmount
	}

	return &response.ProfileResponse{
		UserResponse:  response.UserToResponse(user),
		TotalBookings: len(reservations),
		TotalSpent:    roundCents(spent),
		MemberTier:    MemberTier(len(reservations)),
	}, nil
}
