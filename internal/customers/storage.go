package customers

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a customer with the given ID is not found.
var ErrNotFound = errors.New("customer not found")

// Storage is the persistence interface for customers.
type Storage interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	GetAll(ctx context.Context) ([]*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) error
}
