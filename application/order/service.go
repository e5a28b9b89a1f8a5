/*
Package order orchestrates order business processes, including the
fulfillment coordinator: a status transition applies compensating stock
adjustments for every line item before the new status is persisted.
*/
package order

import (
	"context"

	"shopapi/domain/order"
	"shopapi/domain/product"
	"shopapi/pkg/logger"

	"go.uber.org/zap"
)

// Transactor runs a function inside a store transaction. It is only used
// when transactional fulfillment is enabled.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service coordinates order operations.
type Service struct {
	orders   order.Repository
	products product.Repository
	tx       Transactor

	// transactional switches fulfillment from best-effort per-item
	// adjustments to a single all-or-nothing transaction.
	transactional bool
}

// NewService creates the order service.
func NewService(orders order.Repository, products product.Repository, tx Transactor, transactional bool) *Service {
	return &Service{
		orders:        orders,
		products:      products,
		tx:            tx,
		transactional: transactional,
	}
}

// CreateOrder persists a checkout order in the Processing state.
func (s *Service) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*order.Order, error) {
	if len(req.Items) == 0 {
		return nil, order.ErrEmptyOrderItems
	}

	o := req.toDomain(userID)
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetOrder returns one order by id.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	return s.orders.FindByID(ctx, orderID)
}

// GetUserOrders returns the calling user's orders, newest first.
func (s *Service) GetUserOrders(ctx context.Context, userID string) ([]*order.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

// ListOrders returns every order (admin surface).
func (s *Service) ListOrders(ctx context.Context) ([]*order.Order, error) {
	return s.orders.FindAll(ctx)
}

// DeleteOrder removes an order (admin surface).
func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	return s.orders.Delete(ctx, orderID)
}

// SetOrderStatus transitions an order's status and applies a stock decrement
// for every line item.
//
// Delivered is terminal: a transition out of it fails with ErrOrderDelivered
// and leaves the stored order untouched. In the default best-effort mode all
// line items are attempted even when some fail; the new status is persisted
// only when every adjustment succeeded, otherwise the result reports the
// failed product ids and the order stays unchanged. Reconciling a partially
// adjusted ledger is an out-of-band concern.
func (s *Service) SetOrderStatus(ctx context.Context, orderID string, newStatus order.Status) (*StatusUpdateResult, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, order.ErrOrderDelivered
	}

	if s.transactional {
		return s.setStatusAtomic(ctx, o, newStatus)
	}

	var failed []string
	for _, item := range o.Items {
		adjErr := s.products.AdjustStock(ctx, item.ProductID, -item.Quantity, product.AdjustOptions{})
		if adjErr != nil {
			failed = append(failed, item.ProductID)
			logger.Warn("stock adjustment failed",
				zap.String("order_id", orderID),
				zap.String("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
				zap.Error(adjErr))
		}
	}

	if len(failed) > 0 {
		return &StatusUpdateResult{Success: false, FailedProductIDs: failed}, nil
	}

	if err := s.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}
	return &StatusUpdateResult{Success: true, Status: string(newStatus)}, nil
}

// setStatusAtomic runs the adjustments and the status write in one store
// transaction; the first failing adjustment aborts everything.
func (s *Service) setStatusAtomic(ctx context.Context, o *order.Order, newStatus order.Status) (*StatusUpdateResult, error) {
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, item := range o.Items {
			if err := s.products.AdjustStock(txCtx, item.ProductID, -item.Quantity, product.AdjustOptions{}); err != nil {
				return err
			}
		}
		return s.orders.UpdateStatus(txCtx, o.ID.Hex(), newStatus)
	})
	if err != nil {
		return nil, err
	}
	return &StatusUpdateResult{Success: true, Status: string(newStatus)}, nil
}
