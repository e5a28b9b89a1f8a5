package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"shopapi/domain/listing"
	"shopapi/domain/product"
)

func mustSeed(t *testing.T, repo *ProductRepository, name string, price float64, stock int) string {
	t.Helper()
	p := &product.Product{Name: name, Price: price, Stock: stock, Category: "tshirts"}
	require.NoError(t, repo.Create(context.Background(), p))
	return p.ID.Hex()
}

func TestAdjustStockConcurrentDecrements(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	id := mustSeed(t, repo, "Classic Shirt", 499, 5)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.AdjustStock(ctx, id, -1, product.AdjustOptions{})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 3, p.Stock)
}

func TestAdjustStockGuardRejectsOverdraw(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	id := mustSeed(t, repo, "Classic Shirt", 499, 1)

	err := repo.AdjustStock(ctx, id, -2, product.AdjustOptions{})
	require.ErrorIs(t, err, product.ErrInsufficientStock)

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 1, p.Stock)

	// Exact drain to zero is allowed.
	require.NoError(t, repo.AdjustStock(ctx, id, -1, product.AdjustOptions{}))
}

func TestAdjustStockAllowNegativeOverride(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	id := mustSeed(t, repo, "Classic Shirt", 499, 1)

	require.NoError(t, repo.AdjustStock(ctx, id, -4, product.AdjustOptions{AllowNegative: true}))

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, -3, p.Stock)
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	repo := NewProductRepository()
	err := repo.AdjustStock(context.Background(), "missing", -1, product.AdjustOptions{})
	require.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestListRangeConditions(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	mustSeed(t, repo, "Budget Tee", 199, 10)
	mustSeed(t, repo, "Classic Tee", 499, 10)
	mustSeed(t, repo, "Premium Tee", 1299, 10)

	d := &listing.Descriptor{
		Filters: map[string][]listing.Condition{
			"price": {
				{Op: listing.OpGte, Value: float64(200)},
				{Op: listing.OpLt, Value: float64(1000)},
			},
		},
		Pager: listing.Pager{Page: 1, Limit: 10},
	}

	got, err := repo.List(ctx, d)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Classic Tee", got[0].Name)
}

func TestListUnknownFieldMatchesNothing(t *testing.T) {
	repo := NewProductRepository()
	mustSeed(t, repo, "Classic Tee", 499, 10)

	d := &listing.Descriptor{
		Filters: map[string][]listing.Condition{
			"color": {{Op: listing.OpEq, Value: "red"}},
		},
		Pager: listing.Pager{Page: 1, Limit: 10},
	}

	got, err := repo.List(context.Background(), d)
	require.NoError(t, err)
	require.Empty(t, got)
}
