package auth

import (
	"context"
	"database/sql"
	"errors"

	"api_vendas/internal/storage"
)

// PGStorage persists API users in the users table.
type PGStorage struct {
	DB *sql.DB
}

func NewPGStorage(db *sql.DB) *PGStorage {
	return &PGStorage{DB: db}
}

func (r *PGStorage) Create(ctx context.Context, u *User) error {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO users (id, username, email, password, role, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := run.ExecContext(ctx, q, u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PGStorage) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *PGStorage) GetByID(ctx context.Context, id string) (*User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *PGStorage) get(ctx context.Context, where string, arg any) (*User, error) {
	run := storage.GetRunner(ctx, r.DB)
	q := `
SELECT id, username, email, password, role, created_at
FROM users ` + where
	var u User
	err := run.QueryRowContext(ctx, q, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGStorage) GetAll(ctx context.Context) ([]*User, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT id, username, email, password, role, created_at
FROM users
ORDER BY created_at DESC`
	rows, err := run.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
