package request

type DraftRequest struct {
	RoomID   string `json:"room_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests" validate:"required,min=1"`
}

// CheckoutRequest pays for the session's draft. Card details are only
// required, and only checked, for card payments.
type CheckoutRequest struct {
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=card paypal bank"`
	CardNumber     string `json:"card_number,omitempty" validate:"required_if=PaymentMethod card,omitempty,credit_card"`
	CardholderName string `json:"cardholder_name,omitempty" validate:"required_if=PaymentMethod card,omitempty,max=100"`
	ExpiryMonth    int    `json:"expiry_month,omitempty" validate:"required_if=PaymentMethod card,omitempty,min=1,max=12"`
	ExpiryYear     int    `json:"expiry_year,omitempty" validate:"required_if=PaymentMethod card,omitempty,min=0,max=99"`
	CVV            string `json:"cvv,omitempty" validate:"required_if=PaymentMethod card,omitempty,numeric,min=3,max=4"`
}

// ReservationSearchRequest is bound from the query string of the admin
// reservation and payment listings.
type ReservationSearchRequest struct {
	Query  string `validate:"omitempty,max=100"`
	Status string `validate:"omitempty,oneof=completed pending failed"`
}
