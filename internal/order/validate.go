package order

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidOrder = errors.New("invalid order")

// ValidationError carries the violations found by Validate. It matches ErrInvalidOrder.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid order: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidOrder }

// Validate returns the violations of req in check order; an empty result means valid.
// Checks: customer name, at least one item, then each item (1-indexed) has a product,
// a positive quantity and a non-negative price.
func Validate(req CreateOrderRequest) []string {
	var violations []string
	if strings.TrimSpace(req.CustomerName) == "" {
		violations = append(violations, "customer name required")
	}
	if len(req.Items) == 0 {
		violations = append(violations, "at least one item required")
	}
	for i, it := range req.Items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity <= 0 || it.Price.IsNegative() {
			violations = append(violations, fmt.Sprintf("item %d invalid data", i+1))
		}
	}
	return violations
}
