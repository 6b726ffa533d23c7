package sales

import (
	"context"
	"errors"
	"sort"

	"api_vendas/internal/customers"
	"api_vendas/internal/products"
	"api_vendas/internal/storage"
)

// LocalStorage provides an in-memory implementation of the ledger storage.
// It keeps the sale and line-item maps itself and reaches the shared
// product and customer stores for stock movement and hydration, standing in
// for the SQL joins and foreign keys of the PostgreSQL implementation.
type LocalStorage struct {
	db        *storage.MemoryDB
	produtos  *products.LocalStorage
	clientes  *customers.LocalStorage
	vendas    map[string]Sale
	lineItems map[string][]LineItem
}

// NewLocalStorage instantiates a new in-memory ledger storage backed by the
// shared in-memory database.
func NewLocalStorage(db *storage.MemoryDB, produtos *products.LocalStorage, clientes *customers.LocalStorage) *LocalStorage {
	l := &LocalStorage{
		db:        db,
		produtos:  produtos,
		clientes:  clientes,
		vendas:    map[string]Sale{},
		lineItems: map[string][]LineItem{},
	}
	db.Register(l)
	return l
}

type memorySnapshot struct {
	vendas    map[string]Sale
	lineItems map[string][]LineItem
}

func (l *LocalStorage) Snapshot() any {
	snap := memorySnapshot{
		vendas:    make(map[string]Sale, len(l.vendas)),
		lineItems: make(map[string][]LineItem, len(l.lineItems)),
	}
	for k, v := range l.vendas {
		snap.vendas[k] = v
	}
	for k, v := range l.lineItems {
		items := make([]LineItem, len(v))
		copy(items, v)
		snap.lineItems[k] = items
	}
	return snap
}

func (l *LocalStorage) Restore(snapshot any) {
	snap := snapshot.(memorySnapshot)
	l.vendas = snap.vendas
	l.lineItems = snap.lineItems
}

func (l *LocalStorage) CreateSale(ctx context.Context, sale *Sale) error {
	// The SQL store enforces the customer reference with a foreign key;
	// here we look it up explicitly.
	if _, err := l.clientes.GetByID(ctx, sale.CustomerID); err != nil {
		if errors.Is(err, customers.ErrNotFound) {
			return ErrForeignRef
		}
		return err
	}
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	l.vendas[sale.ID] = *sale
	return nil
}

func (l *LocalStorage) InsertLineItem(ctx context.Context, item *LineItem) error {
	if _, err := l.produtos.GetByID(ctx, item.ProdutoID); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return ErrForeignRef
		}
		return err
	}
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	l.lineItems[item.SaleID] = append(l.lineItems[item.SaleID], *item)
	return nil
}

func (l *LocalStorage) LineItems(ctx context.Context, saleID string) ([]LineItem, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	items := make([]LineItem, len(l.lineItems[saleID]))
	copy(items, l.lineItems[saleID])
	return items, nil
}

func (l *LocalStorage) DeleteLineItems(ctx context.Context, saleID string) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	delete(l.lineItems, saleID)
	return nil
}

func (l *LocalStorage) DeleteSale(ctx context.Context, saleID string) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	if _, ok := l.vendas[saleID]; !ok {
		return ErrNotFound
	}
	delete(l.vendas, saleID)
	return nil
}

func (l *LocalStorage) AdjustStock(ctx context.Context, productID string, delta int) error {
	if err := l.produtos.AdjustStock(ctx, productID, delta); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return ErrForeignRef
		}
		return err
	}
	return nil
}

func (l *LocalStorage) StockForUpdate(ctx context.Context, productID string) (int, error) {
	stock, err := l.produtos.StockCount(ctx, productID)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return 0, ErrForeignRef
		}
		return 0, err
	}
	return stock, nil
}

func (l *LocalStorage) GetAll(ctx context.Context) ([]SaleSummary, error) {
	l.db.RLock(ctx)
	sales := make([]Sale, 0, len(l.vendas))
	for _, v := range l.vendas {
		sales = append(sales, v)
	}
	l.db.RUnlock(ctx)

	out := make([]SaleSummary, 0, len(sales))
	for _, v := range sales {
		c, err := l.clientes.GetByID(ctx, v.CustomerID)
		if err != nil {
			return nil, err
		}
		out = append(out, SaleSummary{
			ID:           v.ID,
			CustomerID:   v.CustomerID,
			CustomerName: c.Name,
			Total:        v.Total,
			CreatedAt:    v.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (l *LocalStorage) GetByID(ctx context.Context, id string) (*SaleDetail, error) {
	l.db.RLock(ctx)
	v, ok := l.vendas[id]
	l.db.RUnlock(ctx)
	if !ok {
		return nil, ErrNotFound
	}

	c, err := l.clientes.GetByID(ctx, v.CustomerID)
	if err != nil {
		return nil, err
	}
	return &SaleDetail{
		SaleSummary: SaleSummary{
			ID:           v.ID,
			CustomerID:   v.CustomerID,
			CustomerName: c.Name,
			Total:        v.Total,
			CreatedAt:    v.CreatedAt,
		},
		CustomerEmail: c.Email,
		CustomerPhone: c.Phone,
	}, nil
}

func (l *LocalStorage) LineItemViews(ctx context.Context, saleID string) ([]LineItemView, error) {
	items, err := l.LineItems(ctx, saleID)
	if err != nil {
		return nil, err
	}

	out := make([]LineItemView, 0, len(items))
	for _, li := range items {
		p, err := l.produtos.GetByID(ctx, li.ProdutoID)
		if err != nil {
			return nil, err
		}
		out = append(out, LineItemView{
			ProdutoID:     li.ProdutoID,
			ProdutoNome:   p.Name,
			Quantidade:    li.Quantidade,
			PrecoUnitario: li.PrecoUnitario,
			Subtotal:      li.Subtotal(),
		})
	}
	return out, nil
}
