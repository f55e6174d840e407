package model

import (
	"time"

	"github.com/google/uuid"
)

// StockRecord is a quantity entry keyed by product name. It lives in its own
// collection with a lifecycle independent from Product; the name join key is
// the only link between the two.
type StockRecord struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
