package auth

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a user with the given ID or email is not
// found.
var ErrNotFound = errors.New("user not found")

// Storage is the persistence interface for API users.
type Storage interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
}
