package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	// CurrentUser returns the session's copy of the signed-in user, or nil
	// for an unknown token.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
	SeedAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository // users, sessions and drafts
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates a customer account and signs it in.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	req.Email = strings.TrimSpace(req.Email)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Check email
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email %s: %w", req.Email, err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	// 3. Create user
	user, err := s.createUser(ctx, req, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	// 4. Sign in
	session, err := s.createSession(ctx, user)
	if err != nil {
		s.log.Error("Failed to create session after register", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User registered", zap.Int64("user_id", user.ID), zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	req.Email = strings.TrimSpace(req.Email)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user %s: %w", req.Email, err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	// 4. Create session
	session, err := s.createSession(ctx, user)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID), zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

// Logout ends the session and drops its draft. The account is untouched.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Delete(ctx, token); err != nil {
		s.log.Error("Failed to remove session", zap.Error(err))
		return fmt.Errorf("remove session: %w", err)
	}
	if err := s.repo.Draft.Delete(ctx, token); err != nil {
		s.log.Warn("Failed to clear draft on logout", zap.Error(err))
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	session, err := s.repo.Session.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	// accounts deleted by an admin lose their sessions lazily
	stored, err := s.repo.User.FindByID(ctx, session.User.ID)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", session.User.ID, err)
	}
	if stored == nil {
		s.log.Info("Session refers to a removed account", zap.Int64("user_id", session.User.ID))
		_ = s.Logout(ctx, token)
		return nil, nil
	}

	return &session.User, nil
}

// SeedAdmin registers the configured admin account unless its email is
// already taken.
func (s *authService) SeedAdmin(ctx context.Context) error {
	email := strings.TrimSpace(s.config.Admin.Email)
	if email == "" {
		return nil
	}

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check admin %s: %w", email, err)
	}
	if existing != nil {
		return nil
	}

	admin, err := s.createUser(ctx, &request.RegisterRequest{
		FirstName: "Hotel",
		LastName:  "Admin",
		Email:     email,
		Password:  s.config.Admin.Password,
	}, entity.RoleAdmin)
	if err != nil {
		return err
	}

	s.log.Info("Admin account seeded", zap.Int64("user_id", admin.ID), zap.String("email", admin.Email))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createUser(ctx context.Context, req *request.RegisterRequest, role entity.UserRole) (*entity.User, error) {
	hashed, err := utils.HashPassword(req.Password, s.config.Booking.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user %s: %w", req.Email, err)
	}
	return user, nil
}

func (s *authService) createSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	session := &entity.Session{
		Token:     utils.GenerateSessionToken(),
		User:      *user,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Session.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
