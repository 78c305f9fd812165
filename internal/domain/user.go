package domain

import (
	"context"
	"time"
)

// User represents a registered account. PasswordHash stays inside the
// service layer; transport DTOs carry a projection without it.
type User struct {
	ID              int64
	Name            string
	Email           string
	PhoneNumber     string
	PasswordHash    string
	ProfileImageURL string
	CreatedAt       time.Time
}

// Identity is the minimal identity a signed token asserts.
type Identity struct {
	UserID int64
	Email  string
}

// UserRepository defines persistence operations for users. Create must
// enforce email uniqueness at the storage layer and report violations as
// ErrEmailExists.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
