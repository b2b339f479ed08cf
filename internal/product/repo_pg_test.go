package product

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/cafezinho/internal/db"
)

func TestPGRepo_SeedAndRead(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := db.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `DELETE FROM products`)
	require.NoError(t, err)

	items := append(Seed(), Product{ID: "99", Title: "Água", Category: "Drinks", Available: true})
	repo := NewPGRepo(pool)
	require.NoError(t, repo.Seed(ctx, items))
	// seeding twice keeps one row per id
	require.NoError(t, repo.Seed(ctx, items))

	p, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.True(t, p.Price.Valid)
	assert.True(t, p.Price.Decimal.Equal(Price("8.50").Decimal))
	assert.NotEmpty(t, p.Ingredients)

	free, err := repo.GetByID(ctx, "99")
	require.NoError(t, err)
	assert.False(t, free.Price.Valid)
	assert.True(t, free.UnitPrice().IsZero())

	sweets, err := repo.List(ctx, Query{Category: "sweets"})
	require.NoError(t, err)
	require.Len(t, sweets, 1)
	assert.Equal(t, "5", sweets[0].ID)

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drinks", "Savory", "Sweets"}, cats)

	_, err = repo.GetByID(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}
