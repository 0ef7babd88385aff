package payments

import (
	"context"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/swarajreddy10/bg-removal-server/services/payments RazorpayGW,StripeGW,EventsGW

// RazorpayGW is the pull-style gateway contract: orders are created
// up front and their status is fetched back from the gateway.
type RazorpayGW interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*models.RazorpayOrder, error)
	FetchOrder(ctx context.Context, orderID string) (*models.RazorpayOrder, error)
}

// StripeGW is the push-style gateway contract: a hosted checkout session
// redirects the client back with the claimed outcome.
type StripeGW interface {
	CreateCheckoutSession(ctx context.Context, params *models.CheckoutParams) (*models.CheckoutSession, error)
}

// EventsGW publishes credit events after successful reconciliation
type EventsGW interface {
	PublishCreditsReconciled(event *models.CreditEvent) error
}

// GatewayRegistry holds the gateways configured at startup. A nil field
// means the gateway's credentials were absent and it is disabled.
type GatewayRegistry struct {
	Razorpay RazorpayGW
	Stripe   StripeGW
}
