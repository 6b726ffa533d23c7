package storage

import (
	"context"
	"sync"
)

// Section is one entity's slice of the in-memory database. Snapshot must
// return a deep copy that Restore can reinstall unchanged.
type Section interface {
	Snapshot() any
	Restore(snapshot any)
}

// MemoryDB is the shared lock and snapshot registry behind the in-memory
// storage implementations. Entity stores keep their own maps and register
// them here so transactions can roll them back as one unit.
type MemoryDB struct {
	mu       sync.RWMutex
	sections []Section
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{}
}

// Register adds a section to the transaction scope. Called once per entity
// store at construction time.
func (m *MemoryDB) Register(s Section) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sections = append(m.sections, s)
}

type memTxKey struct{}

// InMemoryTx reports whether ctx runs inside an in-memory transaction, in
// which case the transaction manager already holds the write lock.
func InMemoryTx(ctx context.Context) bool {
	v, ok := ctx.Value(memTxKey{}).(bool)
	return ok && v
}

// Lock helpers: entity stores call these around every operation; inside a
// transaction the outer lock is already held, so they become no-ops.

func (m *MemoryDB) RLock(ctx context.Context) {
	if !InMemoryTx(ctx) {
		m.mu.RLock()
	}
}

func (m *MemoryDB) RUnlock(ctx context.Context) {
	if !InMemoryTx(ctx) {
		m.mu.RUnlock()
	}
}

func (m *MemoryDB) WLock(ctx context.Context) {
	if !InMemoryTx(ctx) {
		m.mu.Lock()
	}
}

func (m *MemoryDB) WUnlock(ctx context.Context) {
	if !InMemoryTx(ctx) {
		m.mu.Unlock()
	}
}

// MemoryTxManager implements TxManager with a write lock plus section
// snapshots: writers serialize on the database lock, and a failing fn
// restores every section to its pre-transaction state.
type MemoryTxManager struct {
	db *MemoryDB
}

func NewMemoryTxManager(db *MemoryDB) *MemoryTxManager {
	return &MemoryTxManager{db: db}
}

func (m *MemoryTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	snapshots := make([]any, len(m.db.sections))
	for i, s := range m.db.sections {
		snapshots[i] = s.Snapshot()
	}

	ctx = context.WithValue(ctx, memTxKey{}, true)
	if err := fn(ctx); err != nil {
		for i, s := range m.db.sections {
			s.Restore(snapshots[i])
		}
		return err
	}
	return nil
}
