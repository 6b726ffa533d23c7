package products

import (
	"context"
	"database/sql"
	"errors"

	"api_vendas/internal/storage"
)

// PGStorage persists products in the produtos table.
type PGStorage struct {
	DB *sql.DB
}

func NewPGStorage(db *sql.DB) *PGStorage {
	return &PGStorage{DB: db}
}

func (r *PGStorage) Create(ctx context.Context, p *Product) error {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO produtos (id, nome, preco, estoque, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := run.ExecContext(ctx, q, p.ID, p.Name, p.Price, p.Stock, p.CreatedAt)
	return err
}

func (r *PGStorage) GetByID(ctx context.Context, id string) (*Product, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT id, nome, preco, estoque, created_at
FROM produtos
WHERE id = $1`
	var p Product
	err := run.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGStorage) GetAll(ctx context.Context) ([]*Product, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT id, nome, preco, estoque, created_at
FROM produtos
ORDER BY nome`
	rows, err := run.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PGStorage) Update(ctx context.Context, p *Product) error {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
UPDATE produtos
SET nome = $1, preco = $2, estoque = $3
WHERE id = $4`
	res, err := run.ExecContext(ctx, q, p.Name, p.Price, p.Stock, p.ID)
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
	res, err := run.ExecContext(ctx, `DELETE FROM produtos WHERE id = $1`, id)
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
