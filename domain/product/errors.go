package product

import "errors"

var (
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a guarded stock decrement would
	// drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)
