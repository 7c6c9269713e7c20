package request

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,min=10,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=50"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=200"`
	City      *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country   *string `json:"country,omitempty" validate:"omitempty,max=100"`
	ZipCode   *string `json:"zip_code,omitempty" validate:"omitempty,max=20"`
}
