package products

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product with the given ID is not found.
var ErrNotFound = errors.New("product not found")

// Storage is the persistence interface for products. Stock adjustment is
// deliberately absent: the sale ledger owns that primitive so stock can
// only change inside a ledger transaction.
type Storage interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	GetAll(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
