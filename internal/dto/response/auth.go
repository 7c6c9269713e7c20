package response

import (
	"time"

	"hotel-reservation/internal/data/entity"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      entity.UserRole `json:"role"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	City      string          `json:"city,omitempty"`
	Country   string          `json:"country,omitempty"`
	ZipCode   string          `json:"zip_code,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type ProfileResponse struct {
	UserResponse
	TotalBookings int     `json:"total_bookings"`
	TotalSpent    float64 `json:"total_spent"`
	MemberTier    string  `json:"member_tier"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Phone:     user.Phone,
		Address:   user.Address,
		City:      user.City,
		Country:   user.Country,
		ZipCode:   user.ZipCode,
		CreatedAt: user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{User: UserToResponse(user)}
	if session != nil {
		resp.Token = session.Token
	}
	return resp
}
