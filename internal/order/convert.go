package order

import "github.com/MikeMC777/cafezinho/internal/cart"

// ToOrderItems maps cart entries to order lines, preserving cart order.
func ToOrderItems(entries []cart.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			Price:     e.Price,
		})
	}
	return items
}
