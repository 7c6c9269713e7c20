package usecase

import (
	"context"
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

type ReservationService interface {
	StartDraft(ctx context.Context, token string, userID int64, req *request.DraftRequest) (*response.DraftResponse, error)
	GetDraft(ctx context.Context, token string) (*response.DraftResponse, error)
	ClearDraft(ctx context.Context, token string) error
	Checkout(ctx context.Context, token string, userID int64, req *request.CheckoutRequest) (*response.ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID int64) ([]response.ReservationResponse, error)
	CancelUserReservation(ctx context.Context, userID int64, id string) error

	// admin
	GetAllReservations(ctx context.Context, req *request.ReservationSearchRequest) ([]response.AdminReservationResponse, error)
	CancelReservation(ctx context.Context, id string) error
}

type reservationService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewReservationService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "reservation")),
		now:    time.Now,
	}
}

// StartDraft prices a stay and puts it in the session's draft slot,
// replacing whatever draft was there.
func (s *reservationService) StartDraft(ctx context.Context, token string, userID int64, req *request.DraftRequest) (*response.DraftResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Draft validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}
	if err := ValidateStay(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}

	// 2. Find room
	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("find room %s: %w", req.RoomID, err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	// 3. Check capacity
	if req.Guests > room.Guests {
		return nil, fmt.Errorf("%w: room %s takes at most %d", ErrGuestLimit, room.ID, room.Guests)
	}

	// 4. Price and hold
	nights := CalculateNights(req.CheckIn, req.CheckOut)
	draft := &entity.ReservationDraft{
		UserID:        userID,
		RoomID:        room.ID,
		RoomName:      room.Name,
		RoomType:      room.Type,
		RoomImage:     room.Image,
		PricePerNight: room.Price,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Guests:        req.Guests,
		Nights:        nights,
		TotalPrice:    Subtotal(room.Price, nights),
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.Draft.Save(ctx, token, draft); err != nil {
		s.log.Error("Failed to save draft", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("save draft: %w", err)
	}

	resp := response.DraftToResponse(draft, Tax(draft.TotalPrice, s.config.Booking.TaxRate))
	return &resp, nil
}

func (s *reservationService) GetDraft(ctx context.Context, token string) (*response.DraftResponse, error) {
	draft, err := s.repo.Draft.Find(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find draft: %w", err)
	}
	if draft == nil {
		return nil, ErrNoDraft
	}

	resp := response.DraftToResponse(draft, Tax(draft.TotalPrice, s.config.Booking.TaxRate))
	return &resp, nil
}

func (s *reservationService) ClearDraft(ctx context.Context, token string) error {
	return s.repo.Draft.Delete(ctx, token)
}

// Checkout settles the session's draft and records it in the ledger.
// The draft is consumed even if a concurrent checkout raced for it; the
// loser sees ErrNoDraft.
func (s *reservationService) Checkout(ctx context.Context, token string, userID int64, req *request.CheckoutRequest) (*response.ReservationResponse, error) {
	// 1. Validate payment details
	req.CardNumber = NormalizeCardNumber(req.CardNumber)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}
	method := entity.PaymentMethod(req.PaymentMethod)
	if method == entity.PaymentMethodCard && cardExpired(req.ExpiryMonth, req.ExpiryYear, s.now()) {
		return nil, fmt.Errorf("%w: card expired", ErrValidation)
	}

	// 2. Take the draft
	draft, err := s.repo.Draft.Take(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("take draft: %w", err)
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	if draft.UserID != userID {
		s.log.Warn("Draft belongs to another user",
			zap.Int64("user_id", userID),
			zap.Int64("draft_user_id", draft.UserID))
		return nil, ErrForbidden
	}

	// 3. Settle payment
	now := s.now()
	tax := Tax(draft.TotalPrice, s.config.Booking.TaxRate)

	reservation := entity.NewReservationFromDraft(*draft)
	reservation.Tax = tax
	reservation.PaidAmount = roundCents(draft.TotalPrice + tax)
	reservation.PaymentMethod = method
	reservation.PaymentStatus = entity.PaymentStatusCompleted
	reservation.PaymentID = utils.GeneratePaymentID(now)
	reservation.CreatedAt = now.UTC()
	if method == entity.PaymentMethodCard {
		reservation.CardBrand = DetectCardBrand(req.CardNumber)
		reservation.CardLast4 = lastFour(req.CardNumber)
	}

	// 4. Record
	if err := s.repo.Reservation.Create(ctx, &reservation); err != nil {
		s.log.Error("Failed to create reservation", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation paid",
		zap.String("reservation_id", reservation.ID),
		zap.String("payment_id", reservation.PaymentID),
		zap.String("method", string(method)),
		zap.Float64("paid_amount", reservation.PaidAmount),
	)

	resp := response.ReservationToResponse(&reservation)
	return &resp, nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID int64) ([]response.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("list reservations for user %d: %w", userID, err)
	}
	return response.ReservationsToResponse(reservations), nil
}

func (s *reservationService) CancelUserReservation(ctx context.Context, userID int64, id string) error {
	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find reservation %s: %w", id, err)
	}
	if reservation == nil {
		return ErrReservationNotFound
	}
	if reservation.UserID != userID {
		return ErrForbidden
	}

	if _, err := s.repo.Reservation.Delete(ctx, id); err != nil {
		s.log.Error("Failed to cancel reservation", zap.Error(err), zap.String("reservation_id", id))
		return fmt.Errorf("cancel reservation %s: %w", id, err)
	}
	return nil
}

// GetAllReservations lists the ledger newest first with the guest's
// directory entry attached, narrowed by query and payment status.
func (s *reservationService) GetAllReservations(ctx context.Context, req *request.ReservationSearchRequest) ([]response.AdminReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	guests := newGuestLookup(s.repo.User)
	query := strings.ToLower(strings.TrimSpace(req.Query))

	resp := make([]response.AdminReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		if req.Status != "" && string(r.PaymentStatus) != req.Status {
			continue
		}
		name, email := guests.get(ctx, r.UserID)
		if query != "" && !containsAny(query, r.ID, r.RoomName, name, email) {
			continue
		}
		resp = append(resp, response.AdminReservationResponse{
			ReservationResponse: response.ReservationToResponse(r),
			GuestName:           name,
			GuestEmail:          email,
		})
	}
	return resp, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, id string) error {
	deleted, err := s.repo.Reservation.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to cancel reservation", zap.Error(err), zap.String("reservation_id", id))
		return fmt.Errorf("cancel reservation %s: %w", id, err)
	}
	if !deleted {
		return ErrReservationNotFound
	}
	return nil
}

// ==================== HELPER METHODS ====================

// guestLookup memoises directory lookups while building a listing.
// Guests removed from the directory resolve to empty strings.
type guestLookup struct {
	users repository.UserRepository
	seen  map[int64]*entity.User
}

func newGuestLookup(users repository.UserRepository) *guestLookup {
	return &guestLookup{users: users, seen: make(map[int64]*entity.User)}
}

func (g *guestLookup) get(ctx context.Context, userID int64) (name, email string) {
	u, ok := g.seen[userID]
	if !ok {
		u, _ = g.users.FindByID(ctx, userID)
		g.seen[userID] = u
	}
	if u == nil {
		return "", ""
	}
	return u.FullName(), u.Email
}

func containsAny(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
