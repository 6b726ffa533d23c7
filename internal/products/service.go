package products

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrMissingFields is returned when a create/update request lacks the
// required name, price or stock.
var ErrMissingFields = errors.New("name, price and stock are required")

// ErrInvalidPrice is returned when the price is not a positive amount.
var ErrInvalidPrice = errors.New("price must be greater than zero")

// Service provides product management operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new products Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, name string, price decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	p := &Product{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price.Round(2),
		Stock:     stock,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.Create(ctx, p); err != nil {
		s.logger.Error("failed to save product", zap.String("product_id", p.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.Info("product created", zap.String("product_id", p.ID), zap.Int("stock", p.Stock))
	return p, nil
}

// Get returns a single product by ID.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.storage.GetByID(ctx, id)
}

// List returns all products ordered by name.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.storage.GetAll(ctx)
}

// Update replaces the mutable fields of an existing product. Setting stock
// here is an administrative correction; sale-driven stock movement goes
// through the ledger only.
func (s *Service) Update(ctx context.Context, id, name string, price decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	p, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = name
	p.Price = price.Round(2)
	p.Stock = stock

	if err := s.storage.Update(ctx, p); err != nil {
		s.logger.Error("failed to update product", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.storage.Delete(ctx, id)
}
