package entity

import "time"

// Session maps an opaque token to a copy of the signed-in user. The copy
// is not refreshed automatically when the directory record changes.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
