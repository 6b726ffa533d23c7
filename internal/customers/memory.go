package customers

import (
	"context"
	"sort"

	"api_vendas/internal/storage"
)

// LocalStorage provides an in-memory implementation for storing customers.
type LocalStorage struct {
	db *storage.MemoryDB
	m  map[string]Customer
}

// NewLocalStorage instantiates a new LocalStorage for customers backed by
// the shared in-memory database.
func NewLocalStorage(db *storage.MemoryDB) *LocalStorage {
	l := &LocalStorage{
		db: db,
		m:  map[string]Customer{},
	}
	db.Register(l)
	return l
}

func (l *LocalStorage) Snapshot() any {
	cp := make(map[string]Customer, len(l.m))
	for k, v := range l.m {
		cp[k] = v
	}
	return cp
}

func (l *LocalStorage) Restore(snapshot any) {
	l.m = snapshot.(map[string]Customer)
}

func (l *LocalStorage) Create(ctx context.Context, c *Customer) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	l.m[c.ID] = *c
	return nil
}

func (l *LocalStorage) GetByID(ctx context.Context, id string) (*Customer, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	c, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (l *LocalStorage) GetAll(ctx context.Context) ([]*Customer, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	out := make([]*Customer, 0, len(l.m))
	for _, c := range l.m {
		cp := c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (l *LocalStorage) Update(ctx context.Context, c *Customer) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	if _, ok := l.m[c.ID]; !ok {
		return ErrNotFound
	}
	l.m[c.ID] = *c
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
