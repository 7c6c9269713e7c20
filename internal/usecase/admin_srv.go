package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/utils"
)

const recentReservations = 5

type AdminService interface {
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
	GetPaymentRecords(ctx context.Context, req *request.ReservationSearchRequest) (*response.PaymentRecordsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	rooms, err := s.repo.Room.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	users, err := s.repo.User.CountAll(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	var revenue, collected float64
	for _, r := range reservations {
		revenue += r.TotalPrice
		collected += r.PaidAmount
	}

	recent := reservations
	if len(recent) > recentReservations {
		recent = recent[:recentReservations]
	}

	return &response.DashboardResponse{
		TotalRooms:        rooms,
		TotalReservations: len(reservations),
		TotalUsers:        users,
		RoomRevenue:       roundCents(revenue),
		Collected:         roundCents(collected),
		Recent:            response.ReservationsToResponse(recent),
	}, nil
}

// GetPaymentRecords derives one payment per reservation in the ledger.
func (s *adminService) GetPaymentRecords(ctx context.Context, req *request.ReservationSearchRequest) (*response.PaymentRecordsResponse, error) {
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

	resp := &response.PaymentRecordsResponse{Records: make([]response.PaymentRecordResponse, 0)}
	for _, r := range reservations {
		if req.Status != "" && string(r.PaymentStatus) != req.Status {
			continue
		}
		name, email := guests.get(ctx, r.UserID)
		if query != "" && !containsAny(query, r.PaymentID, r.ID, name, email) {
			continue
		}

		resp.Records = append(resp.Records, response.PaymentRecordResponse{
			PaymentID:     r.PaymentID,
			ReservationID: r.ID,
			GuestName:     name,
			GuestEmail:    email,
			RoomName:      r.RoomName,
			Amount:        r.PaidAmount,
			Method:        r.PaymentMethod,
			Status:        r.PaymentStatus,
			CardBrand:     r.CardBrand,
			CardLast4:     r.CardLast4,
			PaidAt:        r.CreatedAt,
		})
		resp.Summary.Count++
		resp.Summary.TotalAmount += r.PaidAmount
		if r.PaymentStatus == entity.PaymentStatusCompleted {
			resp.Summary.CompletedCount++
		}
	}
	resp.Summary.TotalAmount = roundCents(resp.Summary.TotalAmount)

	return resp, nil
}
