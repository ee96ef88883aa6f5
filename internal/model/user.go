package model

import "time"

// User represents a stored user record
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Phone        string    `json:"phone"`
	FirstName    string    `json:"first_name"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserForCreationDTO is the input shape for creating (and replacing) a user
type UserForCreationDTO struct {
	Username  string `json:"username" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// UserDTO is the projection of a User returned to callers
type UserDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	FirstName string    `json:"first_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserLookup is the predicate for a single-user lookup.
// Set fields are OR-combined.
type UserLookup struct {
	ID       *int64
	Username *string
	Phone    *string
}

// ByID returns a lookup matching a user id
func ByID(id int64) UserLookup {
	return UserLookup{ID: &id}
}

// ByUsernameOrPhone returns a lookup matching either the username or the phone
func ByUsernameOrPhone(username, phone string) UserLookup {
	return UserLookup{Username: &username, Phone: &phone}
}

// IsEmpty reports whether no field of the lookup is set
func (l UserLookup) IsEmpty() bool {
	return l.ID == nil && l.Username == nil && l.Phone == nil
}
