package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a sales transaction linking one customer to a set of
// line items. Immutable after creation except for whole-record deletion.
type Sale struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LineItem is one product entry inside a sale. PrecoUnitario is the price
// snapshot taken at sale time, so later product price changes never touch
// historical sales.
type LineItem struct {
	SaleID        string          `json:"-"`
	ProdutoID     string          `json:"produto_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// Subtotal is quantity times the snapshotted unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.PrecoUnitario.Mul(decimal.NewFromInt(int64(li.Quantidade)))
}

// SaleSummary is the list view: sale fields joined with the customer name.
type SaleSummary struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SaleDetail is the detail view: full customer contact fields plus, when
// hydrated, the line items.
type SaleDetail struct {
	SaleSummary
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone"`
	Produtos      []LineItemView `json:"produtos,omitempty"`
}

// LineItemView is a line item enriched with the current product name and
// the subtotal computed from the stored snapshot values.
type LineItemView struct {
	ProdutoID     string          `json:"produto_id"`
	ProdutoNome   string          `json:"produto_nome"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}
