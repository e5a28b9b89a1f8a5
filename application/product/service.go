/*
Package product exposes the catalog operations: descriptor-driven listing,
CRUD glue, stock corrections, and reviews.
*/
package product

import (
	"context"

	"shopapi/domain/listing"
	"shopapi/domain/product"
)

// Service coordinates product operations.
type Service struct {
	products product.Repository

	// Fixed server-side page sizes; never taken from the client.
	resultsPerPage      int
	adminResultsPerPage int
}

// NewService creates the product service.
func NewService(products product.Repository, resultsPerPage, adminResultsPerPage int) *Service {
	return &Service{
		products:            products,
		resultsPerPage:      resultsPerPage,
		adminResultsPerPage: adminResultsPerPage,
	}
}

// ListProducts builds a descriptor from the raw query parameters and returns
// one page of matches. A malformed filter fails the whole request; it is not
// silently dropped.
func (s *Service) ListProducts(ctx context.Context, params map[string]string) ([]*product.Product, listing.Pager, error) {
	return s.list(ctx, params, s.resultsPerPage)
}

// AdminListProducts is the admin listing with its own page size.
func (s *Service) AdminListProducts(ctx context.Context, params map[string]string) ([]*product.Product, listing.Pager, error) {
	return s.list(ctx, params, s.adminResultsPerPage)
}

func (s *Service) list(ctx context.Context, params map[string]string, perPage int) ([]*product.Product, listing.Pager, error) {
	d, err := listing.Build(params, perPage)
	if err != nil {
		return nil, listing.Pager{}, err
	}

	products, err := s.products.List(ctx, d)
	if err != nil {
		return nil, listing.Pager{}, err
	}
	return products, d.Pager, nil
}

// GetProduct returns one product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	return s.products.FindByID(ctx, id)
}

// CreateProduct adds a catalog entry (admin surface).
func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (*product.Product, error) {
	p := req.toDomain()
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct replaces a product's editable fields (admin surface).
func (s *Service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*product.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(p)

	if err := s.products.Update(ctx, id, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct removes a catalog entry (admin surface).
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// CorrectStock applies a signed stock delta with the non-negativity guard
// bypassed. This is the system-internal override; the fulfillment path never
// uses it.
func (s *Service) CorrectStock(ctx context.Context, id string, delta int) error {
	return s.products.AdjustStock(ctx, id, delta, product.AdjustOptions{AllowNegative: true})
}

// AddReview inserts or replaces the calling user's review.
func (s *Service) AddReview(ctx context.Context, productID, userID, userName string, req ReviewRequest) error {
	return s.products.SaveReview(ctx, productID, product.Review{
		UserID:  userID,
		Name:    userName,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
}

// DeleteReview removes the calling user's review.
func (s *Service) DeleteReview(ctx context.Context, productID, userID string) error {
	return s.products.DeleteReview(ctx, productID, userID)
}

// GetReviews returns the reviews for one product.
func (s *Service) GetReviews(ctx context.Context, productID string) ([]product.Review, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return p.Reviews, nil
}
