package entity

import "time"

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodBank   PaymentMethod = "bank"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// DateLayout is the wire and storage format of check-in and check-out dates.
const DateLayout = "2006-01-02"

// ReservationDraft is a booking that has been priced but not paid for.
type ReservationDraft struct {
	UserID        int64     `json:"user_id"`
	RoomID        string    `json:"room_id"`
	RoomName      string    `json:"room_name"`
	RoomType      RoomType  `json:"room_type"`
	RoomImage     string    `json:"room_image"`
	PricePerNight float64   `json:"price_per_night"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Guests        int       `json:"guests"`
	Nights        int       `json:"nights"`
	TotalPrice    float64   `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
}

// Reservation is a paid booking. TotalPrice excludes tax; PaidAmount is
// what the guest was charged.
type Reservation struct {
	ID            string        `json:"id"`
	UserID        int64         `json:"user_id"`
	RoomID        string        `json:"room_id"`
	RoomName      string        `json:"room_name"`
	RoomType      RoomType      `json:"room_type"`
	RoomImage     string        `json:"room_image"`
	PricePerNight float64       `json:"price_per_night"`
	CheckIn       string        `json:"check_in"`
	CheckOut      string        `json:"check_out"`
	Guests        int           `json:"guests"`
	Nights        int           `json:"nights"`
	TotalPrice    float64       `json:"total_price"`
	Tax           float64       `json:"tax"`
	PaidAmount    float64       `json:"paid_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentID     string        `json:"payment_id"`
	CardBrand     string        `json:"card_brand,omitempty"`
	CardLast4     string        `json:"card_last4,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// NewReservationFromDraft copies the booking fields of d. Id and payment
// fields are left for the caller.
func NewReservationFromDraft(d ReservationDraft) Reservation {
	return Reservation{
		UserID:        d.UserID,
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
	}
}
