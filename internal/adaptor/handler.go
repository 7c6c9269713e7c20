package adaptor

import (
	"go.uber.org/zap"

	"hotel-reservation/internal/usecase"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Room        *RoomHandler
	Reservation *ReservationHandler
	Admin       *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Room:        NewRoomHandler(service.Room, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Admin:       NewAdminHandler(service.Admin, log),
	}
}
