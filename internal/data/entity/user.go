package entity

import "strings"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password_hash"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Role         UserRole `json:"role"`
	Phone        string   `json:"phone,omitempty"`
	Address      string   `json:"address,omitempty"`
	City         string   `json:"city,omitempty"`
	Country      string   `json:"country,omitempty"`
	ZipCode      string   `json:"zip_code,omitempty"`
	Timestamps
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfilePatch carries the editable profile fields; nil means unchanged.
type ProfilePatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	City      *string
	Country   *string
	ZipCode   *string
}

func (p ProfilePatch) Apply(u *User) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&u.Email, p.Email)
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.Phone, p.Phone)
	set(&u.Address, p.Address)
	set(&u.City, p.City)
	set(&u.Country, p.Country)
	set(&u.ZipCode, p.ZipCode)
}
