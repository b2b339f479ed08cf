package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MikeMC777/cafezinho/internal/product"
)

var ErrNetwork = errors.New("could not reach server")

// Ext is the HTTP client for the product and order services.
type Ext struct {
	HTTP           *http.Client
	ProductBaseURL string
	OrderBaseURL   string
}

func NewExt(productBaseURL, orderBaseURL string, timeout time.Duration) *Ext {
	return &Ext{
		HTTP:           &http.Client{Timeout: timeout},
		ProductBaseURL: strings.TrimRight(productBaseURL, "/"),
		OrderBaseURL:   strings.TrimRight(orderBaseURL, "/"),
	}
}

type apiError struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// do sends the request and decodes a 2xx body into out. Non-2xx responses are
// returned as *statusError so callers can map them.
func (e *Ext) do(ctx context.Context, method, rawURL string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := e.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var ae apiError
		_ = json.NewDecoder(res.Body).Decode(&ae)
		return &statusError{code: res.StatusCode, msg: ae.Error, details: ae.Details}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

type statusError struct {
	code    int
	msg     string
	details []string
}

func (s *statusError) Error() string {
	if s.msg != "" {
		return fmt.Sprintf("status %d: %s", s.code, s.msg)
	}
	return fmt.Sprintf("status %d", s.code)
}

// mapStatus turns a remote status into this package's error taxonomy.
func mapStatus(err error, notFound error) error {
	var se *statusError
	if !errors.As(err, &se) {
		return err
	}
	switch {
	case se.code == http.StatusNotFound:
		return notFound
	case se.code == http.StatusBadRequest:
		v := se.details
		if len(v) == 0 && se.msg != "" {
			v = []string{se.msg}
		}
		return &ValidationError{Violations: v}
	case se.code == http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrStorageUnavailable, se.msg)
	case se.code >= 500:
		return fmt.Errorf("%w: %v", ErrNetwork, se)
	default:
		return se
	}
}

func (e *Ext) FetchProduct(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	if err := e.do(ctx, http.MethodGet, e.ProductBaseURL+"/products/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, mapStatus(err, product.ErrNotFound)
	}
	return &p, nil
}

func (e *Ext) ListProducts(ctx context.Context, category string) ([]product.Product, error) {
	u := e.ProductBaseURL + "/products"
	if category != "" {
		u += "?category=" + url.QueryEscape(category)
	}
	var out []product.Product
	if err := e.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, mapStatus(err, product.ErrNotFound)
	}
	return out, nil
}

func (e *Ext) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := e.do(ctx, http.MethodGet, e.ProductBaseURL+"/products/meta/categories", nil, &out); err != nil {
		return nil, mapStatus(err, product.ErrNotFound)
	}
	return out, nil
}

func (e *Ext) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var o Order
	if err := e.do(ctx, http.MethodPost, e.OrderBaseURL+"/orders", req, &o); err != nil {
		return nil, mapStatus(err, ErrNotFound)
	}
	return &o, nil
}

func (e *Ext) GetUserOrders(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	if err := e.do(ctx, http.MethodGet, e.OrderBaseURL+"/orders/user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, mapStatus(err, ErrNotFound)
	}
	return out, nil
}

func (e *Ext) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	if err := e.do(ctx, http.MethodGet, e.OrderBaseURL+"/orders/"+url.PathEscape(id), nil, &o); err != nil {
		return nil, mapStatus(err, ErrNotFound)
	}
	return &o, nil
}
