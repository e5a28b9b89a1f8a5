// Package order holds the order entities, the status state machine, and the
// repository contract.
package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// ParseStatus validates a client-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Terminal reports whether no further transition is permitted out of s.
// Delivered is the only terminal state for stock adjustment purposes.
func (s Status) Terminal() bool {
	return s == StatusDelivered
}

// Order is a customer order stored in the orders collection.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	ShippingInfo   ShippingInfo       `bson:"shipping_info" json:"shipping_info"`
	Items          []Item             `bson:"order_items" json:"order_items"`
	PaymentInfo    PaymentInfo        `bson:"payment_info" json:"payment_info"`
	TaxAmount      float64            `bson:"tax_amount" json:"tax_amount"`
	ShippingAmount float64            `bson:"shipping_amount" json:"shipping_amount"`
	TotalAmount    float64            `bson:"total_amount" json:"total_amount"`
	Status         Status             `bson:"order_status" json:"order_status"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// Item is one order line.
type Item struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// ShippingInfo is the delivery address recorded at checkout.
type ShippingInfo struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	Country    string `bson:"country" json:"country"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	Phone      string `bson:"phone" json:"phone"`
}

// PaymentInfo references the external payment provider's record.
type PaymentInfo struct {
	TransactionID string `bson:"transaction_id" json:"transaction_id"`
	Status        string `bson:"status" json:"status"`
}
