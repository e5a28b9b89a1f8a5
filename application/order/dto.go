package order

import (
	"shopapi/domain/order"
)

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	ShippingInfo   ShippingInfoRequest `json:"shipping_info" binding:"required"`
	Items          []ItemRequest       `json:"order_items" binding:"required,min=1"`
	PaymentInfo    PaymentInfoRequest  `json:"payment_info" binding:"required"`
	TaxAmount      float64             `json:"tax_amount" binding:"min=0"`
	ShippingAmount float64             `json:"shipping_amount" binding:"min=0"`
	TotalAmount    float64             `json:"total_amount" binding:"required,gt=0"`
}

// ItemRequest is one order line in a checkout payload.
type ItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required,min=0"`
}

// ShippingInfoRequest is the delivery address in a checkout payload.
type ShippingInfoRequest struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

// PaymentInfoRequest references the external provider's payment record.
type PaymentInfoRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// StatusUpdateResult reports the outcome of a fulfillment status transition.
// Success false means some line-item stock adjustments failed and the stored
// order status was left unchanged.
type StatusUpdateResult struct {
	Success          bool     `json:"success"`
	Status           string   `json:"status,omitempty"`
	FailedProductIDs []string `json:"failed_product_ids,omitempty"`
}

func (req CreateOrderRequest) toDomain(userID string) *order.Order {
	items := make([]order.Item, len(req.Items))
	for i, item := range req.Items {
		items[i] = order.Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return &order.Order{
		UserID: userID,
		ShippingInfo: order.ShippingInfo{
			Address:    req.ShippingInfo.Address,
			City:       req.ShippingInfo.City,
			State:      req.ShippingInfo.State,
			Country:    req.ShippingInfo.Country,
			PostalCode: req.ShippingInfo.PostalCode,
			Phone:      req.ShippingInfo.Phone,
		},
		Items: items,
		PaymentInfo: order.PaymentInfo{
			TransactionID: req.PaymentInfo.TransactionID,
			Status:        req.PaymentInfo.Status,
		},
		TaxAmount:      req.TaxAmount,
		ShippingAmount: req.ShippingAmount,
		TotalAmount:    req.TotalAmount,
		Status:         order.StatusProcessing,
	}
}
