package order

import "errors"

var (
	// ErrOrderNotFound is returned when an order id does not resolve.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderDelivered is returned on an attempted transition out of the
	// Delivered terminal state. The stored order is left unchanged.
	ErrOrderDelivered = errors.New("order is already delivered")

	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrEmptyOrderItems is returned when an order carries no line items.
	ErrEmptyOrderItems = errors.New("order must have at least one item")
)
