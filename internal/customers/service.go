package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingFields is returned when a create/update request lacks the
// required name or email.
var ErrMissingFields = errors.New("name and email are required")

// Service provides customer management operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new customers Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create validates and stores a new customer.
func (s *Service) Create(ctx context.Context, name, email, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	c := &Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(phone),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.Create(ctx, c); err != nil {
		s.logger.Error("failed to save customer", zap.String("customer_id", c.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.logger.Info("customer created", zap.String("customer_id", c.ID))
	return c, nil
}

// Get returns a single customer by ID.
func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	return s.storage.GetByID(ctx, id)
}

// List returns all customers ordered by name.
func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.storage.GetAll(ctx)
}

// Update replaces the mutable fields of an existing customer.
func (s *Service) Update(ctx context.Context, id, name, email, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	c, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = name
	c.Email = email
	c.Phone = strings.TrimSpace(phone)

	if err := s.storage.Update(ctx, c); err != nil {
		s.logger.Error("failed to update customer", zap.String("customer_id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.storage.Delete(ctx, id)
}
