package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/utils"
)

type RoomService interface {
	ListRooms(ctx context.Context, req *request.RoomSearchRequest) ([]response.RoomResponse, error)
	GetRoom(ctx context.Context, id string) (*response.RoomResponse, error)
	GetQuote(ctx context.Context, id string, req *request.QuoteRequest) (*response.QuoteResponse, error)

	// admin
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, id string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, id string) error
}

type roomService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewRoomService(repo *repository.Repository, config *utils.Config, log *zap.Logger) RoomService {
	return &roomService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "room")),
	}
}

func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
}

func (s *roomService) ListRooms(ctx context.Context, req *request.RoomSearchRequest) ([]response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	rooms, err := s.repo.Room.Search(ctx, entity.RoomFilter{
		Guests: req.Guests,
		Type:   strings.ToLower(strings.TrimSpace(req.Type)),
		Query:  req.Query,
	})
	if err != nil {
		s.log.Error("Failed to search rooms", zap.Error(err))
		return nil, fmt.Errorf("search rooms: %w", err)
	}

	return response.RoomsToResponse(rooms), nil
}

func (s *roomService) findRoom(ctx context.Context, id string) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", id))
		return nil, fmt.Errorf("find room %s: %w", id, err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *roomService) GetRoom(ctx context.Context, id string) (*response.RoomResponse, error) {
	room, err := s.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// GetQuote prices a stay without holding anything.
func (s *roomService) GetQuote(ctx context.Context, id string, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	// 1. Validate dates
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if err := ValidateStay(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}

	// 2. Find room
	room, err := s.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. Price it
	q := NewQuote(room.Price, req.CheckIn, req.CheckOut, s.config.Booking.TaxRate)

	return &response.QuoteResponse{
		RoomID:        room.ID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		PricePerNight: room.Price,
		Nights:        q.Nights,
		Subtotal:      q.Subtotal,
		Tax:           q.Tax,
		Total:         q.Payable,
	}, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	room := &entity.Room{
		Name:        strings.TrimSpace(req.Name),
		Type:        entity.RoomType(req.Type),
		Price:       req.Price,
		Beds:        req.Beds,
		Guests:      req.Guests,
		Image:       req.Image,
		Description: req.Description,
		Amenities:   req.Amenities,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("name", room.Name))
		return nil, fmt.Errorf("create room: %w", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, id string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	patch := entity.RoomPatch{
		Name:        req.Name,
		Price:       req.Price,
		Beds:        req.Beds,
		Guests:      req.Guests,
		Image:       req.Image,
		Description: req.Description,
		Amenities:   req.Amenities,
	}
	if req.Type != nil {
		t := entity.RoomType(*req.Type)
		patch.Type = &t
	}

	room, err := s.repo.Room.Update(ctx, id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", id))
		return nil, fmt.Errorf("update room %s: %w", id, err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// DeleteRoom leaves reservations for the room untouched.
func (s *roomService) DeleteRoom(ctx context.Context, id string) error {
	deleted, err := s.repo.Room.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", id))
		return fmt.Errorf("delete room %s: %w", id, err)
	}
	if !deleted {
		return ErrRoomNotFound
	}
	return nil
}
