package request

type RoomRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Type        string   `json:"type" validate:"required,oneof=single double suite deluxe"`
	Price       float64  `json:"price" validate:"gte=0"`
	Beds        int      `json:"beds" validate:"required,min=1"`
	Guests      int      `json:"guests" validate:"required,min=1"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Amenities   []string `json:"amenities,omitempty" validate:"omitempty,dive,required,max=50"`
}

type RoomUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=single double suite deluxe"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Beds        *int     `json:"beds,omitempty" validate:"omitempty,min=1"`
	Guests      *int     `json:"guests,omitempty" validate:"omitempty,min=1"`
	Image       *string  `json:"image,omitempty" validate:"omitempty,url"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Amenities   []string `json:"amenities,omitempty" validate:"omitempty,dive,required,max=50"`
}

// RoomSearchRequest is bound from the query string.
type RoomSearchRequest struct {
	Guests *int   `validate:"omitempty,min=0"`
	Type   string `validate:"omitempty,oneof=single double suite deluxe any"`
	Query  string `validate:"omitempty,max=100"`
}

type QuoteRequest struct {
	CheckIn  string `validate:"required,datetime=2006-01-02"`
	CheckOut string `validate:"required,datetime=2006-01-02"`
}
