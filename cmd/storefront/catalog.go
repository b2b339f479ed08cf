package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	ord "github.com/MikeMC777/cafezinho/internal/order"
	prod "github.com/MikeMC777/cafezinho/internal/product"
)

// catalog is the read side of the product service as the storefront sees it.
type catalog interface {
	ListProducts(ctx context.Context, category string) ([]prod.Product, error)
	FetchProduct(ctx context.Context, id string) (*prod.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

var _ catalog = (*ord.Ext)(nil)

// localCatalog serves the seeded catalog without a product service.
type localCatalog struct{ repo *prod.MemoryRepo }

func newLocalCatalog() localCatalog {
	return localCatalog{repo: prod.NewMemoryRepo(prod.Seed())}
}

func (l localCatalog) ListProducts(ctx context.Context, category string) ([]prod.Product, error) {
	return l.repo.List(ctx, prod.Query{Category: category})
}

func (l localCatalog) FetchProduct(ctx context.Context, id string) (*prod.Product, error) {
	return l.repo.GetByID(ctx, id)
}

func (l localCatalog) Categories(ctx context.Context) ([]string, error) {
	return l.repo.Categories(ctx)
}

// fallbackCatalog asks remote first and answers from local when remote cannot be reached.
type fallbackCatalog struct {
	remote catalog
	local  catalog
}

func unreachable(err error) bool {
	if errors.Is(err, ord.ErrNetwork) {
		zap.L().Warn("product service unreachable, using bundled catalog", zap.Error(err))
		return true
	}
	return false
}

func (f fallbackCatalog) ListProducts(ctx context.Context, category string) ([]prod.Product, error) {
	out, err := f.remote.ListProducts(ctx, category)
	if unreachable(err) {
		return f.local.ListProducts(ctx, category)
	}
	return out, err
}

func (f fallbackCatalog) FetchProduct(ctx context.Context, id string) (*prod.Product, error) {
	p, err := f.remote.FetchProduct(ctx, id)
	if unreachable(err) {
		return f.local.FetchProduct(ctx, id)
	}
	return p, err
}

func (f fallbackCatalog) Categories(ctx context.Context) ([]string, error) {
	out, err := f.remote.Categories(ctx)
	if unreachable(err) {
		return f.local.Categories(ctx)
	}
	return out, err
}
