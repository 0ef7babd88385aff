package payments

import (
	"context"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swarajreddy10/bg-removal-server/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// InitiateRazorpayPayment creates a ledger entry and a Razorpay order
	InitiateRazorpayPayment(ctx context.Context, req *models.PaymentRequest) (*models.RazorpayOrder, error)

	// VerifyRazorpayPayment reconciles a payment against the gateway's
	// authoritative order status
	VerifyRazorpayPayment(ctx context.Context, orderID string) (*models.ReconcileResult, error)

	// InitiateStripePayment creates a ledger entry and a checkout session
	InitiateStripePayment(ctx context.Context, req *models.PaymentRequest) (*models.CheckoutSession, error)

	// VerifyStripePayment reconciles a payment from the checkout redirect's
	// claimed outcome
	VerifyStripePayment(ctx context.Context, transactionID string, success bool) (*models.ReconcileResult, error)

	// ListTransactions returns a user's purchase history
	ListTransactions(ctx context.Context, externalUserID string) ([]*models.Transaction, error)
}
