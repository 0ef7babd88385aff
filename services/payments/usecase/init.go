package usecase

import (
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/payments"
)

// PaymentUC implements the payments.PaymentUC interface
type PaymentUC struct {
	cfg      *models.Config
	repo     payments.PaymentRepo
	gateways payments.GatewayRegistry
	events   payments.EventsGW
}

// NewPaymentUC creates a new payment usecase. events may be nil when no
// message broker is configured.
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	gateways payments.GatewayRegistry,
	events payments.EventsGW,
) *PaymentUC {
	return &PaymentUC{
		cfg:      cfg,
		repo:     repo,
		gateways: gateways,
		events:   events,
	}
}
