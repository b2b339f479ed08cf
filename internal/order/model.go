package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

// StatusPending is the only state this service assigns; later states belong to fulfilment.
const StatusPending Status = "pending"

// Item is one order line. Price is the unit price captured at checkout.
type Item struct {
	ProductID string          `json:"product"  example:"1"`
	Quantity  int             `json:"quantity" example:"2"`
	Price     decimal.Decimal `json:"price"    swaggertype:"number" example:"8.5"`
}

func (it Item) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Order is immutable once created.
type Order struct {
	ID            string          `json:"_id"`
	UserID        string          `json:"user"`
	Items         []Item          `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	Status        Status          `json:"status"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	OrderNumber   string          `json:"orderNumber"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Total sums price × quantity over items.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// FormatOrderNumber renders the human-facing number: "#0001", "#0002", ...
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("#%04d", n)
}

func (o *Order) clone() *Order {
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	return &cp
}
