package sales

import (
	"context"
	"database/sql"
	"errors"

	"api_vendas/internal/storage"
)

// PGStorage persists the ledger in the vendas and venda_produtos tables.
// Its mutating methods join the transaction carried by the context.
type PGStorage struct {
	DB *sql.DB
}

func NewPGStorage(db *sql.DB) *PGStorage {
	return &PGStorage{DB: db}
}

func (r *PGStorage) CreateSale(ctx context.Context, sale *Sale) error {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO vendas (id, cliente_id, total, data_venda)
VALUES ($1, $2, $3, $4)`
	_, err := run.ExecContext(ctx, q, sale.ID, sale.CustomerID, sale.Total, sale.CreatedAt)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return ErrForeignRef
		}
		return err
	}
	return nil
}

func (r *PGStorage) InsertLineItem(ctx context.Context, item *LineItem) error {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO venda_produtos (venda_id, produto_id, quantidade, preco_unitario)
VALUES ($1, $2, $3, $4)`
	_, err := run.ExecContext(ctx, q, item.SaleID, item.ProdutoID, item.Quantidade, item.PrecoUnitario)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return ErrForeignRef
		}
		return err
	}
	return nil
}

func (r *PGStorage) LineItems(ctx context.Context, saleID string) ([]LineItem, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT venda_id, produto_id, quantidade, preco_unitario
FROM venda_produtos
WHERE venda_id = $1`
	rows, err := run.QueryContext(ctx, q, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItem, 0)
	for rows.Next() {
		var li LineItem
		if err := rows.Scan(&li.SaleID, &li.ProdutoID, &li.Quantidade, &li.PrecoUnitario); err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

func (r *PGStorage) DeleteLineItems(ctx context.Context, saleID string) error {
	run := storage.GetRunner(ctx, r.DB)
	_, err := run.ExecContext(ctx, `DELETE FROM venda_produtos WHERE venda_id = $1`, saleID)
	return err
}

func (r *PGStorage) DeleteSale(ctx context.Context, saleID string) error {
	run := storage.GetRunner(ctx, r.DB)
	res, err := run.ExecContext(ctx, `DELETE FROM vendas WHERE id = $1`, saleID)
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

func (r *PGStorage) AdjustStock(ctx context.Context, productID string, delta int) error {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
UPDATE produtos
SET estoque = estoque + $1
WHERE id = $2`
	res, err := run.ExecContext(ctx, q, delta, productID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrForeignRef
	}
	return nil
}

func (r *PGStorage) StockForUpdate(ctx context.Context, productID string) (int, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT estoque
FROM produtos
WHERE id = $1
FOR UPDATE`
	var stock int
	if err := run.QueryRowContext(ctx, q, productID).Scan(&stock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrForeignRef
		}
		return 0, err
	}
	return stock, nil
}

func (r *PGStorage) GetAll(ctx context.Context) ([]SaleSummary, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT v.id, v.cliente_id, c.nome, v.total, v.data_venda
FROM vendas v
JOIN clientes c ON v.cliente_id = c.id
ORDER BY v.data_venda DESC`
	rows, err := run.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SaleSummary, 0)
	for rows.Next() {
		var s SaleSummary
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.CustomerName, &s.Total, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGStorage) GetByID(ctx context.Context, id string) (*SaleDetail, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT v.id, v.cliente_id, c.nome, c.email, c.telefone, v.total, v.data_venda
FROM vendas v
JOIN clientes c ON v.cliente_id = c.id
WHERE v.id = $1`
	var d SaleDetail
	err := run.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.CustomerID, &d.CustomerName, &d.CustomerEmail, &d.CustomerPhone,
		&d.Total, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *PGStorage) LineItemViews(ctx context.Context, saleID string) ([]LineItemView, error) {
	run := storage.GetRunner(ctx, r.DB)
	const q = `
SELECT p.id, p.nome, vp.quantidade, vp.preco_unitario,
       (vp.quantidade * vp.preco_unitario) AS subtotal
FROM venda_produtos vp
JOIN produtos p ON vp.produto_id = p.id
WHERE vp.venda_id = $1`
	rows, err := run.QueryContext(ctx, q, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LineItemView, 0)
	for rows.Next() {
		var v LineItemView
		if err := rows.Scan(&v.ProdutoID, &v.ProdutoNome, &v.Quantidade, &v.PrecoUnitario, &v.Subtotal); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
