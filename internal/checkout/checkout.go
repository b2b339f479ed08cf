// Package checkout turns the session cart into an order:
// cart → order items → validation → order service → empty cart.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeMC777/cafezinho/internal/cart"
	"github.com/MikeMC777/cafezinho/internal/order"
	"github.com/MikeMC777/cafezinho/internal/user"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrAddressRequired = errors.New("delivery address required")
)

type Request struct {
	CustomerName  string
	CustomerPhone string
	Address       string
}

type Checkout struct {
	Cart   *cart.Store
	Users  *user.Session
	Orders order.Placer
}

// Place runs the pipeline. Input problems are reported before anything is written;
// the cart is cleared only after the order is stored. A blank name falls back to the
// stored user's name.
func (c *Checkout) Place(ctx context.Context, req Request) (*order.Order, error) {
	entries := c.Cart.Entries()
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		if u := c.Users.Load(ctx); u != nil {
			name = strings.TrimSpace(u.Name)
		}
	}
	if name == "" {
		return nil, &order.ValidationError{Violations: []string{"customer name required"}}
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, ErrAddressRequired
	}

	data := order.CreateOrderRequest{
		Items:         order.ToOrderItems(entries),
		CustomerName:  name,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Notes:         "Entregar em: " + address,
	}
	if v := order.Validate(data); len(v) > 0 {
		zap.L().Info("checkout rejected", zap.Strings("violations", v))
		return nil, &order.ValidationError{Violations: v}
	}

	userID, err := c.Users.EnsureUser(ctx, name)
	if err != nil {
		return nil, err
	}
	data.UserID = userID

	created, err := c.Orders.CreateOrder(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	c.Cart.Clear(ctx)
	return created, nil
}

// Receipt renders the confirmation message sent to the shop for an order.
func Receipt(o *order.Order, entries []cart.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NOVO PEDIDO %s\n", o.OrderNumber)
	fmt.Fprintf(&b, "Cliente: %s\n", o.CustomerName)
	if o.CustomerPhone != "" {
		fmt.Fprintf(&b, "Telefone: %s\n", o.CustomerPhone)
	}
	if o.Notes != "" {
		fmt.Fprintf(&b, "%s\n", o.Notes)
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "\n %dx %s - %s", e.Quantity, e.Title, Currency(e.Price))
	}
	fmt.Fprintf(&b, "\n\nValor total: %s", Currency(o.TotalAmount))
	return b.String()
}
