package customers

import (
	"context"
	"database/sql"
	"errors"

	"api_vendas/internal/storage"
)

// PGStorage persists customers in the clientes table.
type PGStorage struct {
	DB *sql.DB
}

func NewPGStorage(db *sql.DB) *PGStorage {
	return &PGStorage{DB: db}
}

func (r *PGStorage) Create(ctx context.Context, c *Customer) error {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO clientes (id, nome, email, telefone, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := run.ExecContext(ctx, q, c.ID, c.Name, c.Email, c.Phone, c.CreatedAt)
	return err
}

func (r *PGStorage) GetByID(ctx context.Context, id string) (*Customer, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT id, nome, email, telefone, created_at
FROM clientes
WHERE id = $1`
	var c Customer
	err := run.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGStorage) GetAll(ctx context.Context) ([]*Customer, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT id, nome, email, telefone, created_at
FROM clientes
ORDER BY nome`
	rows, err := run.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Customer, 0)
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *PGStorage) Update(ctx context.Context, c *Customer) error {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
UPDATE clientes
SET nome = $1, email = $2, telefone = $3
WHERE id = $4`
	res, err := run.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGStorage) Delete(ctx context.Context, id string) error {
	run := storage.GetRunner(ctx, r.DB)
	res, err := run.ExecContext(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
