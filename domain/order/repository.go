package order

import "context"

// Repository is the order persistence contract.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByUserID(ctx context.Context, userID string) ([]*Order, error)
	FindAll(ctx context.Context) ([]*Order, error)

	// UpdateStatus persists a new status for the order. The stored document
	// is the sole serialization point for concurrent transitions.
	UpdateStatus(ctx context.Context, id string, status Status) error

	Delete(ctx context.Context, id string) error
}
