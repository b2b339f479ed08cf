package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Placer creates orders. Implemented by the local Service and by the HTTP client Ext.
type Placer interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
}

// Backend is the full order surface the storefront talks to.
type Backend interface {
	Placer
	GetUserOrders(ctx context.Context, userID string) ([]Order, error)
	GetOrderByID(ctx context.Context, id string) (*Order, error)
}

var (
	_ Backend = (*Service)(nil)
	_ Backend = (*Ext)(nil)
)

// Service owns the order collection and the process-scoped order number counter.
type Service struct {
	repo    Repository
	counter atomic.Int64
	now     func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateOrder validates req, prices it and stores it as a pending order.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if v := Validate(req); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}

	now := s.now().UTC()
	o := &Order{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		Items:         append([]Item(nil), req.Items...),
		TotalAmount:   Total(req.Items),
		Status:        StatusPending,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Notes:         req.Notes,
		OrderNumber:   FormatOrderNumber(s.counter.Add(1)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		zap.L().Error("order create failed", zap.String("order_number", o.OrderNumber), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	zap.L().Info("order created",
		zap.String("order_number", o.OrderNumber),
		zap.String("user_id", o.UserID),
		zap.String("total", o.TotalAmount.StringFixed(2)),
	)
	return o, nil
}

// GetUserOrders returns the orders owned by userID in creation order.
func (s *Service) GetUserOrders(ctx context.Context, userID string) ([]Order, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return out, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return o, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return out, nil
}

// Reset drops every order and restarts numbering at #0001.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	s.counter.Store(0)
	return nil
}
