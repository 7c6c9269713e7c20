package usecase

import (
	"go.uber.org/zap"

	"hotel-reservation/internal/data/repository"
	"hotel-reservation/pkg/utils"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Room        RoomService
	Reservation ReservationService
	Admin       AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo, log),
		Room:        NewRoomService(repo, config, log),
		Reservation: NewReservationService(repo, config, log),
		Admin:       NewAdminService(repo, log),
	}
}
