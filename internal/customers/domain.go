package customers

import "time"

// Customer represents a buyer referenced by sales. The ledger only reads
// customers; they are created and maintained here.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
