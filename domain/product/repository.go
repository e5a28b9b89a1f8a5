package product

import (
	"context"

	"shopapi/domain/listing"
)

// AdjustOptions controls a stock ledger adjustment.
// AllowNegative bypasses the non-negativity guard; it exists for
// system-internal stock corrections only.
type AdjustOptions struct {
	AllowNegative bool
}

// Repository is the product persistence contract.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, id string, p *Product) error
	Delete(ctx context.Context, id string) error

	// List executes a listing descriptor against the collection and returns
	// one page of matches. Search and filters combine as a logical AND; the
	// pager applies after both. An empty page is not an error.
	List(ctx context.Context, d *listing.Descriptor) ([]*Product, error)

	// AdjustStock applies a signed delta to a product's stock as a single
	// store-side increment, bypassing unrelated document validation.
	// Returns ErrProductNotFound when the id does not resolve and
	// ErrInsufficientStock when the guard refuses a decrement.
	AdjustStock(ctx context.Context, id string, delta int, opts AdjustOptions) error

	// SaveReview inserts or replaces the calling user's review and
	// recomputes the aggregate rating fields.
	SaveReview(ctx context.Context, productID string, review Review) error

	// DeleteReview removes the user's review and recomputes ratings.
	DeleteReview(ctx context.Context, productID, userID string) error
}
