package gateway

import (
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/logger"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/payments"
)

// NewGatewayRegistry builds the available-gateway registry from config.
// A gateway with missing credentials is left out of the registry and all
// operations against it fail as unavailable.
func NewGatewayRegistry(cfg *models.Config) payments.GatewayRegistry {
	registry := payments.GatewayRegistry{}

	if cfg.Razorpay.KeyID != "" && cfg.Razorpay.KeySecret != "" {
		registry.Razorpay = NewRazorpayClient(cfg.Razorpay)
	} else {
		logger.Warn("Razorpay credentials absent, gateway disabled")
	}

	if cfg.Stripe.SecretKey != "" {
		registry.Stripe = NewStripeClient(cfg.Stripe)
	} else {
		logger.Warn("Stripe credentials absent, gateway disabled")
	}

	return registry
}
