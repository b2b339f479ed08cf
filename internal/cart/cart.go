// Package cart holds the pre-checkout selection of one session. Every mutation
// writes the whole entry list to durable storage so the cart survives restarts.
package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MikeMC777/cafezinho/internal/kv"
	"github.com/MikeMC777/cafezinho/internal/product"
)

// Entry is one product line in the cart. Price is captured when the product is first added.
type Entry struct {
	ProductID string          `json:"id"`
	Title     string          `json:"title"`
	Category  string          `json:"category,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Subtotal is price × quantity.
func (e Entry) Subtotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

type Store struct {
	mu      sync.Mutex
	kv      kv.Store
	key     string
	entries []Entry
}

// Open restores the cart persisted under "<namespace>:cart". A missing or unreadable
// blob yields an empty cart.
func Open(ctx context.Context, store kv.Store, namespace string) *Store {
	s := &Store{kv: store, key: kv.Key(namespace, "cart")}
	var saved []Entry
	err := kv.GetJSON(ctx, store, s.key, &saved)
	switch {
	case err == nil:
		s.entries = saved
	case errors.Is(err, kv.ErrNotFound):
	default:
		zap.L().Warn("cart restore failed", zap.String("key", s.key), zap.Error(err))
	}
	return s
}

// Add increments the entry for p, inserting it with quantity 1 when absent.
func (s *Store) Add(ctx context.Context, p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = add(s.entries, p)
	s.persist(ctx)
}

// Remove decrements the entry for productID and drops it at zero. Unknown ids are ignored.
func (s *Store) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = remove(s.entries, productID)
	s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.persist(ctx)
}

// Entries returns a copy in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, e := range s.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		n += e.Quantity
	}
	return n
}

// persist must be called with mu held. Failures are logged: cart state is not critical.
func (s *Store) persist(ctx context.Context) {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	if err := kv.SetJSON(ctx, s.kv, s.key, entries); err != nil {
		zap.L().Warn("cart persist failed", zap.String("key", s.key), zap.Error(err))
	}
}

func add(entries []Entry, p product.Product) []Entry {
	for i := range entries {
		if entries[i].ProductID == p.ID {
			out := append([]Entry(nil), entries...)
			out[i].Quantity++
			return out
		}
	}
	return append(entries, Entry{
		ProductID: p.ID,
		Title:     p.Title,
		Category:  p.Category,
		Quantity:  1,
		Price:     p.UnitPrice(),
	})
}

func remove(entries []Entry, productID string) []Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if e.ProductID == productID {
			e.Quantity--
		}
		if e.Quantity > 0 {
			out = append(out, e)
		}
	}
	return out
}
