package products

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable item with a current stock count. Stock is
// only mutated through the stock-adjustment primitive inside a sale
// transaction; this package's CRUD sets it as a whole.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}
