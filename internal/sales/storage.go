package sales

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrValidation is the kind for malformed input, rejected before any
// storage access.
var ErrValidation = errors.New("invalid sale request")

// ErrForeignRef is the kind for referential-integrity failures: the sale or
// a line item names a customer or product that does not exist in the store.
var ErrForeignRef = errors.New("customer or product not found")

// ErrInsufficientStock is returned by the guarded decrement (strict-stock
// mode only) when a line's quantity exceeds the product's current stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// Storage is the persistence interface for the sale ledger. The mutating
// methods are always invoked inside a TxManager transaction; they join it
// through the context. Stock adjustment lives here, not on the product
// CRUD, so nothing outside a ledger transaction can move stock.
type Storage interface {
	CreateSale(ctx context.Context, sale *Sale) error
	InsertLineItem(ctx context.Context, item *LineItem) error
	LineItems(ctx context.Context, saleID string) ([]LineItem, error)
	DeleteLineItems(ctx context.Context, saleID string) error
	DeleteSale(ctx context.Context, saleID string) error

	// AdjustStock applies a delta to the referenced product's stock, or
	// ErrForeignRef when the product does not exist.
	AdjustStock(ctx context.Context, productID string, delta int) error
	// StockForUpdate reads the product's stock under a row lock for the
	// guarded check-then-decrement.
	StockForUpdate(ctx context.Context, productID string) (int, error)

	GetAll(ctx context.Context) ([]SaleSummary, error)
	GetByID(ctx context.Context, id string) (*SaleDetail, error)
	LineItemViews(ctx context.Context, saleID string) ([]LineItemView, error)
}
