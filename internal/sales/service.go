package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"api_vendas/internal/storage"
)

// Service is the sale ledger. It is the only place that creates or deletes
// sales, and the only caller of the stock-adjustment primitive, so every
// stock movement happens inside one of its all-or-nothing transactions.
type Service struct {
	storage     Storage
	tx          storage.TxManager
	logger      *zap.Logger
	strictStock bool
}

// NewService creates a new ledger Service. strictStock enables the guarded
// check-then-decrement; off preserves the legacy behavior of letting stock
// go negative.
func NewService(st Storage, tx storage.TxManager, logger *zap.Logger, strictStock bool) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage:     st,
		tx:          tx,
		logger:      logger,
		strictStock: strictStock,
	}
}

// CreateSale validates the request, computes the total from the
// caller-supplied snapshot prices, and persists the sale, its line items
// and the stock decrements as one transaction. Any failure after the
// transaction opens rolls back every row and every decrement.
//
// Duplicate products are intentionally not merged: two lines naming the
// same product stay two rows and two decrements.
func (s *Service) CreateSale(ctx context.Context, customerID string, lines []LineItem) (*SaleDetail, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customer_id is required", ErrValidation)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: at least one product is required", ErrValidation)
	}
	for _, li := range lines {
		if strings.TrimSpace(li.ProdutoID) == "" || li.Quantidade <= 0 || li.PrecoUnitario.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: each line needs produto_id, quantidade and preco_unitario", ErrValidation)
		}
	}

	// Total comes from the request's snapshot prices, not from the current
	// product prices.
	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(li.Subtotal())
	}

	sale := &Sale{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Total:      total.Round(2),
		CreatedAt:  time.Now().UTC(),
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.storage.CreateSale(ctx, sale); err != nil {
			return err
		}
		for i := range lines {
			lines[i].SaleID = sale.ID
			if s.strictStock {
				stock, err := s.storage.StockForUpdate(ctx, lines[i].ProdutoID)
				if err != nil {
					return err
				}
				if stock < lines[i].Quantidade {
					return fmt.Errorf("%w: produto %s has %d, requested %d",
						ErrInsufficientStock, lines[i].ProdutoID, stock, lines[i].Quantidade)
				}
			}
			if err := s.storage.InsertLineItem(ctx, &lines[i]); err != nil {
				return err
			}
			if err := s.storage.AdjustStock(ctx, lines[i].ProdutoID, -lines[i].Quantidade); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to create sale",
			zap.String("customer_id", customerID),
			zap.Int("lines", len(lines)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sale created",
		zap.String("sale_id", sale.ID),
		zap.String("customer_id", customerID),
		zap.String("total", sale.Total.String()),
	)
	return s.GetSale(ctx, sale.ID)
}

// DeleteSale restores every affected product's stock and removes the sale
// with its line items as one transaction. An unknown id is a no-op that
// reports not found without opening a mutating transaction.
func (s *Service) DeleteSale(ctx context.Context, id string) error {
	if _, err := s.storage.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		items, err := s.storage.LineItems(ctx, id)
		if err != nil {
			return err
		}
		for _, li := range items {
			if err := s.storage.AdjustStock(ctx, li.ProdutoID, li.Quantidade); err != nil {
				return err
			}
		}
		if err := s.storage.DeleteLineItems(ctx, id); err != nil {
			return err
		}
		return s.storage.DeleteSale(ctx, id)
	})
	if err != nil {
		s.logger.Error("failed to delete sale", zap.String("sale_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("sale deleted", zap.String("sale_id", id))
	return nil
}

// ListSales returns all sales joined with the customer name, newest first.
func (s *Service) ListSales(ctx context.Context) ([]SaleSummary, error) {
	return s.storage.GetAll(ctx)
}

// GetSale returns the hydrated detail view: sale, customer contact fields
// and line items with the current product name and computed subtotal.
func (s *Service) GetSale(ctx context.Context, id string) (*SaleDetail, error) {
	detail, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.storage.LineItemViews(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Produtos = views
	return detail, nil
}
