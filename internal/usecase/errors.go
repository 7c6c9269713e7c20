package usecase

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrNoDraft             = errors.New("no reservation in progress")
	ErrGuestLimit          = errors.New("guest count exceeds room capacity")
	ErrInvalidDates        = errors.New("check-out must be after check-in")
	ErrForbidden           = errors.New("forbidden")
)
