// Package payment is a thin facade over the external payment provider. The
// provider integration lives behind the Gateway interface; nothing in here
// inspects card data.
package payment

import "context"

// Gateway is the external provider contract.
type Gateway interface {
	// Key returns the publishable key the storefront uses to tokenize cards.
	Key() string
	// Capture charges the given amount (smallest currency unit) and returns
	// the provider's charge id.
	Capture(ctx context.Context, amount int64, currency string) (string, error)
}

// Service delegates to the configured gateway.
type Service struct {
	gateway Gateway
}

// NewService creates the payment service.
func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// PublishableKey returns the storefront key.
func (s *Service) PublishableKey() string {
	return s.gateway.Key()
}

// Capture runs a charge through the gateway.
func (s *Service) Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error) {
	chargeID, err := s.gateway.Capture(ctx, req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}
	return &CaptureResult{ChargeID: chargeID, Amount: req.Amount, Currency: req.Currency}, nil
}
