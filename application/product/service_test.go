package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shopapi/domain/listing"
	"shopapi/domain/product"
	"shopapi/infrastructure/persistence/memory"
)

func newService(t *testing.T) (*Service, *memory.ProductRepository) {
	t.Helper()
	repo := memory.NewProductRepository()
	return NewService(repo, 6, 20), repo
}

func seed(t *testing.T, repo *memory.ProductRepository, name, category string, price float64, stock int) string {
	t.Helper()
	p := &product.Product{Name: name, Category: category, Price: price, Stock: stock, Description: "d"}
	require.NoError(t, repo.Create(context.Background(), p))
	return p.ID.Hex()
}

func TestListProductsSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	seed(t, repo, "Classic SHIRT", "tshirts", 499, 10)
	seed(t, repo, "shirt-free hoodie", "hoodies", 999, 5)
	seed(t, repo, "Plain Cap", "caps", 199, 20)

	page, _, err := svc.ListProducts(ctx, map[string]string{"search": "shirt"})
	require.NoError(t, err)

	// Substring semantics: "shirt-free" matches too, "Plain Cap" does not.
	require.Len(t, page, 2)
	names := []string{page[0].Name, page[1].Name}
	require.NotContains(t, names, "Plain Cap")
}

func TestListProductsFilterAndSearchCombineAsAND(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	seed(t, repo, "Classic Shirt", "tshirts", 499, 10)
	seed(t, repo, "Premium Shirt", "tshirts", 1299, 10)
	seed(t, repo, "Classic Hoodie", "hoodies", 499, 10)

	page, _, err := svc.ListProducts(ctx, map[string]string{
		"search": "shirt",
		"price":  `{"lte":"500"}`,
	})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "Classic Shirt", page[0].Name)
}

func TestListProductsPagination(t *testing.T) {
	repo := memory.NewProductRepository()
	svc := NewService(repo, 2, 20)
	ctx := context.Background()

	for _, name := range []string{"tee one", "tee two", "tee three", "tee four", "tee five"} {
		seed(t, repo, name, "tshirts", 499, 10)
	}

	page1, pager, err := svc.ListProducts(ctx, map[string]string{})
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.Equal(t, listing.Pager{Page: 1, Limit: 2, Skip: 0}, pager)

	page3, pager, err := svc.ListProducts(ctx, map[string]string{"page": "3"})
	require.NoError(t, err)
	require.Len(t, page3, 1)
	require.Equal(t, 4, pager.Skip)

	empty, _, err := svc.ListProducts(ctx, map[string]string{"page": "9"})
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestListProductsMalformedFilterRejected(t *testing.T) {
	svc, repo := newService(t)
	seed(t, repo, "Classic Shirt", "tshirts", 499, 10)

	_, _, err := svc.ListProducts(context.Background(), map[string]string{"price": `{"gte":`})
	require.ErrorIs(t, err, listing.ErrMalformedFilter)
}

func TestCorrectStockBypassesGuard(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	id := seed(t, repo, "Classic Shirt", "tshirts", 499, 2)

	// The override may drive stock negative; it exists for internal
	// corrections only.
	require.NoError(t, svc.CorrectStock(ctx, id, -5))

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, -3, p.Stock)
}

func TestReviews(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	id := seed(t, repo, "Classic Shirt", "tshirts", 499, 10)

	require.NoError(t, svc.AddReview(ctx, id, "user-1", "Asha", ReviewRequest{Rating: 4, Comment: "good"}))
	require.NoError(t, svc.AddReview(ctx, id, "user-2", "Ben", ReviewRequest{Rating: 2, Comment: "meh"}))

	reviews, err := svc.GetReviews(ctx, id)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.InDelta(t, 3.0, p.Ratings, 0.001)

	// Same user reviews again: replaced, not appended.
	require.NoError(t, svc.AddReview(ctx, id, "user-1", "Asha", ReviewRequest{Rating: 5, Comment: "great"}))
	p, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 2, p.ReviewCount)
	require.InDelta(t, 3.5, p.Ratings, 0.001)

	require.NoError(t, svc.DeleteReview(ctx, id, "user-2"))
	p, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 1, p.ReviewCount)
	require.InDelta(t, 5.0, p.Ratings, 0.001)
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetProduct(context.Background(), "66f0000000000000000000ff")
	require.ErrorIs(t, err, product.ErrProductNotFound)
}
