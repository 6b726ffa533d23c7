package products

import (
	"context"
	"sort"

	"api_vendas/internal/storage"
)

// LocalStorage provides an in-memory implementation for storing products.
type LocalStorage struct {
	db *storage.MemoryDB
	m  map[string]Product
}

// NewLocalStorage instantiates a new LocalStorage for products backed by
// the shared in-memory database.
func NewLocalStorage(db *storage.MemoryDB) *LocalStorage {
	l := &LocalStorage{
		db: db,
		m:  map[string]Product{},
	}
	db.Register(l)
	return l
}

func (l *LocalStorage) Snapshot() any {
	cp := make(map[string]Product, len(l.m))
	for k, v := range l.m {
		cp[k] = v
	}
	return cp
}

func (l *LocalStorage) Restore(snapshot any) {
	l.m = snapshot.(map[string]Product)
}

func (l *LocalStorage) Create(ctx context.Context, p *Product) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	l.m[p.ID] = *p
	return nil
}

func (l *LocalStorage) GetByID(ctx context.Context, id string) (*Product, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	p, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (l *LocalStorage) GetAll(ctx context.Context) ([]*Product, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	out := make([]*Product, 0, len(l.m))
	for _, p := range l.m {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (l *LocalStorage) Update(ctx context.Context, p *Product) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	if _, ok := l.m[p.ID]; !ok {
		return ErrNotFound
	}
	l.m[p.ID] = *p
	return nil
}

func (l *LocalStorage) Delete(ctx context.Context, id string) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	if _, ok := l.m[id]; !ok {
		return ErrNotFound
	}
	delete(l.m, id)
	return nil
}

// AdjustStock applies a stock delta on the concrete type only, for the sale
// ledger's in-memory storage. It is kept off the Storage interface so no
// CRUD path can reach it.
func (l *LocalStorage) AdjustStock(ctx context.Context, id string, delta int) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	p, ok := l.m[id]
	if !ok {
		return ErrNotFound
	}
	p.Stock += delta
	l.m[id] = p
	return nil
}

// StockCount reads the current stock for the ledger's guarded decrement.
func (l *LocalStorage) StockCount(ctx context.Context, id string) (int, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	p, ok := l.m[id]
	if !ok {
		return 0, ErrNotFound
	}
	return p.Stock, nil
}
