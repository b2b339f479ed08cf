package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/cafezinho/internal/product"
)

// newAPIServer serves a minimal product + order API backed by a real Service.
func newAPIServer(t *testing.T) (*httptest.Server, *Service) {
	t.Helper()
	svc := NewService(NewMemoryRepo())
	catalog := product.NewMemoryRepo(product.Seed())

	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		items, _ := catalog.List(r.Context(), product.Query{Category: r.URL.Query().Get("category")})
		writeJSON(w, http.StatusOK, items)
	})
	mux.HandleFunc("/products/meta/categories", func(w http.ResponseWriter, r *http.Request) {
		cats, _ := catalog.Categories(r.Context())
		writeJSON(w, http.StatusOK, cats)
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		p, err := catalog.GetByID(r.Context(), path.Base(r.URL.Path))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		writeJSON(w, http.StatusOK, p)
	})
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		o, err := svc.CreateOrder(r.Context(), req)
		if err != nil {
			verr := err.(*ValidationError)
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid order", "details": verr.Violations})
			return
		}
		writeJSON(w, http.StatusCreated, o)
	})
	mux.HandleFunc("/orders/user/", func(w http.ResponseWriter, r *http.Request) {
		out, _ := svc.GetUserOrders(r.Context(), path.Base(r.URL.Path))
		writeJSON(w, http.StatusOK, out)
	})
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetOrderByID(r.Context(), path.Base(r.URL.Path))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		writeJSON(w, http.StatusOK, o)
	})
	mux.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "order storage unavailable"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, svc
}

func TestExt_Products(t *testing.T) {
	srv, _ := newAPIServer(t)
	ext := NewExt(srv.URL+"/", srv.URL, 2*time.Second)
	ctx := context.Background()

	p, err := ext.FetchProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Expresso Cappuccino", p.Title)
	assert.True(t, p.UnitPrice().Equal(dec("8.5")))

	_, err = ext.FetchProduct(ctx, "nope")
	require.ErrorIs(t, err, product.ErrNotFound)

	drinks, err := ext.ListProducts(ctx, "Drinks")
	require.NoError(t, err)
	assert.Len(t, drinks, 4)

	cats, err := ext.Categories(ctx)
	require.NoError(t, err)
	assert.Contains(t, cats, "Drinks")
}

func TestExt_OrdersRoundTrip(t *testing.T) {
	srv, _ := newAPIServer(t)
	ext := NewExt(srv.URL, srv.URL, 2*time.Second)
	ctx := context.Background()

	created, err := ext.CreateOrder(ctx, validRequest("u1"))
	require.NoError(t, err)
	assert.Equal(t, "#0001", created.OrderNumber)
	assert.True(t, created.TotalAmount.Equal(dec("24.5")))

	got, err := ext.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OrderNumber, got.OrderNumber)

	mine, err := ext.GetUserOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	_, err = ext.GetOrderByID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestExt_ValidationDetails(t *testing.T) {
	srv, _ := newAPIServer(t)
	ext := NewExt(srv.URL, srv.URL, 2*time.Second)

	_, err := ext.CreateOrder(context.Background(), CreateOrderRequest{UserID: "u1"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"customer name required", "at least one item required"}, verr.Violations)
}

func TestExt_ServiceUnavailable(t *testing.T) {
	srv, _ := newAPIServer(t)
	ext := NewExt(srv.URL, srv.URL, 2*time.Second)

	err := ext.do(context.Background(), http.MethodGet, srv.URL+"/boom", nil, nil)
	require.ErrorIs(t, mapStatus(err, ErrNotFound), ErrStorageUnavailable)
}

func TestExt_NetworkError(t *testing.T) {
	srv, _ := newAPIServer(t)
	ext := NewExt(srv.URL, srv.URL, 2*time.Second)
	srv.Close()

	_, err := ext.CreateOrder(context.Background(), validRequest("u1"))
	require.ErrorIs(t, err, ErrNetwork)
}
