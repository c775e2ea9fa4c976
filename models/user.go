package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a pilot account used for authentication.
// PasswordHash must never leave the server.
type User struct {
	// UserID is the unique identifier every owned row is scoped by.
	UserID uuid.UUID `json:"-"`

	// Email is the unique login of the user.
	Email string `json:"email" validate:"required,email"`

	// Password carries the plaintext password of a register or login
	// request. It is never persisted.
	Password string `json:"password,omitempty" validate:"required,min=8,max=72"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// FirstName and LastName are shown by the client greeting.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
