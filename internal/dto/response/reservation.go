package response

import (
	"time"

	"hotel-reservation/internal/data/entity"
)

type DraftResponse struct {
	RoomID        string          `json:"room_id"`
	RoomName      string          `json:"room_name"`
	RoomType      entity.RoomType `json:"room_type"`
	RoomImage     string          `json:"room_image"`
	PricePerNight float64         `json:"price_per_night"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	Guests        int             `json:"guests"`
	Nights        int             `json:"nights"`
	TotalPrice    float64         `json:"total_price"`
	Tax           float64         `json:"tax"`
	Payable       float64         `json:"payable"`
}

type ReservationResponse struct {
	ID            string               `json:"id"`
	UserID        int64                `json:"user_id"`
	RoomID        string               `json:"room_id"`
	RoomName      string               `json:"room_name"`
	RoomType      entity.RoomType      `json:"room_type"`
	RoomImage     string               `json:"room_image"`
	PricePerNight float64              `json:"price_per_night"`
	CheckIn       string               `json:"check_in"`
	CheckOut      string               `json:"check_out"`
	Guests        int                  `json:"guests"`
	Nights        int                  `json:"nights"`
	TotalPrice    float64              `json:"total_price"`
	Tax           float64              `json:"tax"`
	PaidAmount    float64              `json:"paid_amount"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	PaymentID     string               `json:"payment_id"`
	CardBrand     string               `json:"card_brand,omitempty"`
	CardLast4     string               `json:"card_last4,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

func DraftToResponse(d *entity.ReservationDraft, tax float64) DraftResponse {
	return DraftResponse{
		RoomID:        d.RoomID,
		RoomName:      d.RoomName,
		RoomType:      d.RoomType,
		RoomImage:     d.RoomImage,
		PricePerNight: d.PricePerNight,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Guests:        d.Guests,
		Nights:        d.Nights,
		TotalPrice:    d.TotalPrice,
		Tax:           tax,
		Payable:       d.TotalPrice + tax,
	}
}

func ReservationToResponse(r *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		RoomID:        r.RoomID,
		RoomName:      r.RoomName,
		RoomType:      r.RoomType,
		RoomImage:     r.RoomImage,
		PricePerNight: r.PricePerNight,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Guests:        r.Guests,
		Nights:        r.Nights,
		TotalPrice:    r.TotalPrice,
		Tax:           r.Tax,
		PaidAmount:    r.PaidAmount,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		PaymentID:     r.PaymentID,
		CardBrand:     r.CardBrand,
		CardLast4:     r.CardLast4,
		CreatedAt:     r.CreatedAt,
	}
}

func ReservationsToResponse(rs []*entity.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, ReservationToResponse(r))
	}
	return resp
}
