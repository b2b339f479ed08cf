package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ord "github.com/MikeMC777/cafezinho/internal/order"
)

//
// ---------- STUBS ----------
//

// stubRepo implements the ord.Repository interface in memory and can be switched to failing.
type stubRepo struct {
	orders []ord.Order
	down   bool
}

func (s *stubRepo) Create(ctx context.Context, o *ord.Order) error {
	if s.down {
		return fmt.Errorf("connection refused")
	}
	s.orders = append(s.orders, *o)
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*ord.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			cp := s.orders[i]
			return &cp, nil
		}
	}
	return nil, ord.ErrNotFound
}

func (s *stubRepo) ListByUser(ctx context.Context, userID string) ([]ord.Order, error) {
	out := []ord.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubRepo) List(ctx context.Context) ([]ord.Order, error) {
	return append([]ord.Order{}, s.orders...), nil
}

func (s *stubRepo) Clear(ctx context.Context) error {
	s.orders = nil
	return nil
}

func postOrder(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

const validBody = `{"user_id":%q,"customerName":"João","items":[
	{"product":"1","quantity":2,"price":8.5},
	{"product":"2","quantity":1,"price":"7.5"}]}`

//
// ---------- TESTS ----------
//

func TestCreateOrder_HappyPath(t *testing.T) {
	repo := &stubRepo{}
	r := newRouter(ord.NewService(repo))

	uid := uuid.NewString()
	w := postOrder(r, fmt.Sprintf(validBody, uid))

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var o ord.Order
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !o.TotalAmount.Equal(decimal.RequireFromString("24.5")) {
		t.Fatalf("totalAmount=%s, want 24.5", o.TotalAmount)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"totalAmount":24.5`)) {
		t.Fatalf("totalAmount not sent as a number: %s", w.Body.String())
	}
	if o.OrderNumber != "#0001" || o.Status != ord.StatusPending || o.UserID != uid {
		t.Fatalf("unexpected order: %+v", o)
	}
	if len(repo.orders) != 1 || len(repo.orders[0].Items) != 2 {
		t.Fatalf("order/items not stored")
	}
}

func TestCreateOrder_SequentialNumbers(t *testing.T) {
	r := newRouter(ord.NewService(&stubRepo{}))

	var numbers []string
	for i := 0; i < 2; i++ {
		w := postOrder(r, fmt.Sprintf(validBody, "u1"))
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var o ord.Order
		_ = json.Unmarshal(w.Body.Bytes(), &o)
		numbers = append(numbers, o.OrderNumber)
	}
	if numbers[0] != "#0001" || numbers[1] != "#0002" {
		t.Fatalf("order numbers=%v", numbers)
	}
}

func TestCreateOrder_ValidationDetails(t *testing.T) {
	repo := &stubRepo{}
	r := newRouter(ord.NewService(repo))

	w := postOrder(r, `{"user_id":"u1","customerName":"","items":[]}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
	}
	var e struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(e.Details) != 2 {
		t.Fatalf("details=%v, want 2 violations", e.Details)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("invalid order was stored")
	}
}

func TestCreateOrder_BadJSON(t *testing.T) {
	r := newRouter(ord.NewService(&stubRepo{}))
	if w := postOrder(r, `{"items":`); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
	}
}

func TestCreateOrder_StorageDown(t *testing.T) {
	r := newRouter(ord.NewService(&stubRepo{down: true}))
	if w := postOrder(r, fmt.Sprintf(validBody, "u1")); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d body=%s (want 503)", w.Code, w.Body.String())
	}
}

// ===== GET /orders/:id =====
func TestGetOrder_OK_And_NotFound(t *testing.T) {
	r := newRouter(ord.NewService(&stubRepo{}))

	w := postOrder(r, fmt.Sprintf(validBody, "u1"))
	var created ord.Order
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = get(r, "/orders/"+created.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got ord.Order
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.ID != created.ID || got.OrderNumber != created.OrderNumber || !got.TotalAmount.Equal(created.TotalAmount) {
		t.Fatalf("got %+v, want %+v", got, created)
	}

	if w := get(r, "/orders/"+uuid.NewString()); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (want 404)", w.Code, w.Body.String())
	}
}

// ===== GET /orders/:id/items =====
func TestGetOrderItems_OK(t *testing.T) {
	r := newRouter(ord.NewService(&stubRepo{}))

	w := postOrder(r, fmt.Sprintf(validBody, "u1"))
	var created ord.Order
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = get(r, "/orders/"+created.ID+"/items")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (want 200)", w.Code, w.Body.String())
	}
	var items []ord.Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 2 || items[0].ProductID != "1" {
		t.Fatalf("items=%+v", items)
	}
}

// ===== GET /orders/user/:id =====
func TestListOrdersByUser_OK(t *testing.T) {
	r := newRouter(ord.NewService(&stubRepo{}))

	uid := uuid.NewString()
	postOrder(r, fmt.Sprintf(validBody, uid))
	postOrder(r, fmt.Sprintf(validBody, "someone-else"))
	postOrder(r, fmt.Sprintf(validBody, uid))

	w := get(r, "/orders/user/"+uid)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (want 200)", w.Code, w.Body.String())
	}
	var arr []ord.Order
	if err := json.Unmarshal(w.Body.Bytes(), &arr); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(arr) != 2 || arr[0].OrderNumber != "#0001" || arr[1].OrderNumber != "#0003" {
		t.Fatalf("orders=%+v", arr)
	}

	w = get(r, "/orders/user/nobody")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("status=%d body=%s (want 200 [])", w.Code, w.Body.String())
	}
}

// ===== GET /orders =====
func TestListOrders_All(t *testing.T) {
	r := newRouter(ord.NewService(&stubRepo{}))
	postOrder(r, fmt.Sprintf(validBody, "a"))
	postOrder(r, fmt.Sprintf(validBody, "b"))

	var arr []ord.Order
	w := get(r, "/orders")
	if err := json.Unmarshal(w.Body.Bytes(), &arr); err != nil || len(arr) != 2 {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}
