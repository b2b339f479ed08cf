// Package product provides the catalog repository interface with in-memory and PostgreSQL implementations.
package product

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Query struct {
	Category string
}

type Repository interface {
	List(ctx context.Context, q Query) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// MemoryRepo serves a fixed product list. It never mutates it.
type MemoryRepo struct{ items []Product }

func NewMemoryRepo(items []Product) *MemoryRepo { return &MemoryRepo{items: items} }

func (r *MemoryRepo) List(_ context.Context, q Query) ([]Product, error) {
	category := strings.TrimSpace(q.Category)
	out := make([]Product, 0, len(r.items))
	for _, p := range r.items {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (*Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.items {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const selectProduct = `
		SELECT id, title, description, ingredients, price::text, category, available, created_at, updated_at
		FROM products`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Ingredients, &p.Price,
		&p.Category, &p.Available, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, selectProduct+`
		WHERE ($1 = '' OR lower(category) = lower($1))
		ORDER BY id
	`, strings.TrimSpace(q.Category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, selectProduct+` WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PGRepo) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Seed inserts items that are not present yet.
func (r *PGRepo) Seed(ctx context.Context, items []Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	batch := &pgx.Batch{}
	for _, p := range items {
		batch.Queue(`
		INSERT INTO products (id, title, description, ingredients, price, category, available, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
		ON CONFLICT (id) DO NOTHING
	`, p.ID, p.Title, nonNil(p.Description), nonNil(p.Ingredients), p.Price, p.Category, p.Available)
	}
	return r.db.SendBatch(ctx, batch).Close()
}

// nonNil keeps pgx from sending NULL for the NOT NULL array columns.
func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
