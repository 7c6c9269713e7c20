package response

import (
	"time"

	"hotel-reservation/internal/data/entity"
)

// DashboardResponse reports two revenue figures: RoomRevenue sums the
// tax-exclusive totals, Collected sums what guests actually paid.
type DashboardResponse struct {
	TotalRooms        int                   `json:"total_rooms"`
	TotalReservations int                   `json:"total_reservations"`
	TotalUsers        int64                 `json:"total_users"`
	RoomRevenue       float64               `json:"room_revenue"`
	Collected         float64               `json:"collected"`
	Recent            []ReservationResponse `json:"recent_reservations"`
}

type AdminReservationResponse struct {
	ReservationResponse
	GuestName  string `json:"guest_name,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
}

type PaymentRecordResponse struct {
	PaymentID     string               `json:"payment_id"`
	ReservationID string               `json:"reservation_id"`
	GuestName     string               `json:"guest_name,omitempty"`
	GuestEmail    string               `json:"guest_email,omitempty"`
	RoomName      string               `json:"room_name"`
	Amount        float64              `json:"amount"`
	Method        entity.PaymentMethod `json:"method"`
	Status        entity.PaymentStatus `json:"status"`
	CardBrand     string               `json:"card_brand,omitempty"`
	CardLast4     string               `json:"card_last4,omitempty"`
	PaidAt        time.Time            `json:"paid_at"`
}

type PaymentSummary struct {
	Count          int     `json:"count"`
	TotalAmount    float64 `json:"total_amount"`
	CompletedCount int     `json:"completed_count"`
}

type PaymentRecordsResponse struct {
	Records []PaymentRecordResponse `json:"records"`
	Summary PaymentSummary          `json:"summary"`
}
