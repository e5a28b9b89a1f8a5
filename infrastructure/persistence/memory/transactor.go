package memory

import "context"

// Transactor satisfies the fulfillment transactor contract without real
// transaction semantics; the in-memory stores apply writes immediately.
type Transactor struct{}

// NewTransactor creates a no-op transactor.
func NewTransactor() *Transactor { return &Transactor{} }

// WithinTransaction runs fn directly.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
