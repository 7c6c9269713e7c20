package entity

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
	RoomTypeDeluxe RoomType = "deluxe"
)

// RoomTypeAny disables the type filter in a room search.
const RoomTypeAny = "any"

type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        RoomType `json:"type"`
	Price       float64  `json:"price"`
	Beds        int      `json:"beds"`
	Guests      int      `json:"guests"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Timestamps
}

// RoomPatch carries the fields of an edit; nil means unchanged.
type RoomPatch struct {
	Name        *string
	Type        *RoomType
	Price       *float64
	Beds        *int
	Guests      *int
	Image       *string
	Description *string
	Amenities   []string
}

// Apply merges the non-nil fields of p into r.
func (p RoomPatch) Apply(r *Room) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	if p.Beds != nil {
		r.Beds = *p.Beds
	}
	if p.Guests != nil {
		r.Guests = *p.Guests
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Amenities != nil {
		r.Amenities = append([]string(nil), p.Amenities...)
	}
}

// RoomFilter narrows a catalog search. Zero values match everything.
type RoomFilter struct {
	Guests *int
	Type   string
	Query  string
}
