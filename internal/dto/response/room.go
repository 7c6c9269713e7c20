package response

import (
	"time"

	"hotel-reservation/internal/data/entity"
)

type RoomResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        entity.RoomType `json:"type"`
	Price       float64         `json:"price"`
	Beds        int             `json:"beds"`
	Guests      int             `json:"guests"`
	Image       string          `json:"image"`
	Description string          `json:"description,omitempty"`
	Amenities   []string        `json:"amenities,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type QuoteResponse struct {
	RoomID        string  `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	PricePerNight float64 `json:"price_per_night"`
	Nights        int     `json:"nights"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Type:        room.Type,
		Price:       room.Price,
		Beds:        room.Beds,
		Guests:      room.Guests,
		Image:       room.Image,
		Description: room.Description,
		Amenities:   room.Amenities,
		UpdatedAt:   room.UpdatedAt,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, RoomToResponse(room))
	}
	return resp
}
