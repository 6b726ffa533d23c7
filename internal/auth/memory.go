package auth

import (
	"context"
	"sort"

	"api_vendas/internal/storage"
)

// LocalStorage provides an in-memory implementation for storing users.
type LocalStorage struct {
	db *storage.MemoryDB
	m  map[string]User
}

// NewLocalStorage instantiates a new LocalStorage for users backed by the
// shared in-memory database.
func NewLocalStorage(db *storage.MemoryDB) *LocalStorage {
	l := &LocalStorage{
		db: db,
		m:  map[string]User{},
	}
	db.Register(l)
	return l
}

func (l *LocalStorage) Snapshot() any {
	cp := make(map[string]User, len(l.m))
	for k, v := range l.m {
		cp[k] = v
	}
	return cp
}

func (l *LocalStorage) Restore(snapshot any) {
	l.m = snapshot.(map[string]User)
}

func (l *LocalStorage) Create(ctx context.Context, u *User) error {
	l.db.WLock(ctx)
	defer l.db.WUnlock(ctx)
	for _, existing := range l.m {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	l.m[u.ID] = *u
	return nil
}

func (l *LocalStorage) GetByEmail(ctx context.Context, email string) (*User, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	for _, u := range l.m {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (l *LocalStorage) GetByID(ctx context.Context, id string) (*User, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	u, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (l *LocalStorage) GetAll(ctx context.Context) ([]*User, error) {
	l.db.RLock(ctx)
	defer l.db.RUnlock(ctx)
	out := make([]*User, 0, len(l.m))
	for _, u := range l.m {
		cp := u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
