package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a read-only catalog entry.
type Product struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description []string `json:"description"`
	// Price is optional in the catalog; see UnitPrice for the default.
	Price       decimal.NullDecimal `json:"price" swaggertype:"number"`
	Category    string              `json:"category"`
	Ingredients []string            `json:"ingredients"`
	Available   bool                `json:"available"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// UnitPrice returns the catalog price, or zero when the product has none.
func (p Product) UnitPrice() decimal.Decimal {
	if !p.Price.Valid {
		return decimal.Zero
	}
	return p.Price.Decimal
}

// Price builds a set NullDecimal from a literal such as "8.50". It panics on bad input
// and is meant for seed data and tests.
func Price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}
