package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/logger"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/payments"
)

// InitiateRazorpayPayment creates an unpaid ledger entry and a Razorpay
// order carrying the transaction id as its receipt.
func (uc *PaymentUC) InitiateRazorpayPayment(ctx context.Context, req *models.PaymentRequest) (*models.RazorpayOrder, error) {
	if uc.gateways.Razorpay == nil {
		return nil, payments.ErrGatewayUnavailable
	}

	txn, plan, err := uc.createPendingTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	order, err := uc.gateways.Razorpay.CreateOrder(ctx, int64(plan.Amount)*100, uc.cfg.Payment.Currency, txn.ID)
	if err != nil {
		// The unpaid ledger entry stays behind; reconciliation simply
		// never fires for it.
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	return order, nil
}

// VerifyRazorpayPayment polls the gateway for the authoritative order
// status and settles the transaction referenced by the echoed receipt.
func (uc *PaymentUC) VerifyRazorpayPayment(ctx context.Context, orderID string) (*models.ReconcileResult, error) {
	if uc.gateways.Razorpay == nil {
		return nil, payments.ErrGatewayUnavailable
	}

	order, err := uc.gateways.Razorpay.FetchOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch razorpay order: %w", err)
	}

	if order.Status != models.RazorpayOrderStatusPaid {
		return &models.ReconcileResult{Credited: false, Message: models.MsgPaymentFailed}, nil
	}

	return uc.settle(ctx, order.Receipt)
}

// InitiateStripePayment creates an unpaid ledger entry and a hosted
// checkout session redirecting back with the transaction id.
func (uc *PaymentUC) InitiateStripePayment(ctx context.Context, req *models.PaymentRequest) (*models.CheckoutSession, error) {
	if uc.gateways.Stripe == nil {
		return nil, payments.ErrGatewayUnavailable
	}

	txn, plan, err := uc.createPendingTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	params := &models.CheckoutParams{
		AmountMinor: int64(plan.Amount) * 100,
		Currency:    uc.cfg.Payment.Currency,
		ProductName: "Credit Purchase",
		SuccessURL:  fmt.Sprintf("%s/verify?success=true&transactionId=%s", req.Origin, txn.ID),
		CancelURL:   fmt.Sprintf("%s/verify?success=false&transactionId=%s", req.Origin, txn.ID),
	}

	session, err := uc.gateways.Stripe.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session, nil
}

// VerifyStripePayment settles a transaction based on the checkout
// redirect's claimed outcome. The claim is weaker than the pull-style
// path, but amount and credits were fixed server-side at initiation, so a
// client can only settle its own pending transaction.
func (uc *PaymentUC) VerifyStripePayment(ctx context.Context, transactionID string, success bool) (*models.ReconcileResult, error) {
	logger.Warn("Settling from client-claimed checkout outcome",
		logger.String("transaction_id", transactionID),
		logger.Bool("claimed_success", success),
	)

	if !success {
		return &models.ReconcileResult{Credited: false, Message: models.MsgPaymentFailed}, nil
	}

	return uc.settle(ctx, transactionID)
}

// ListTransactions returns a user's purchase history, newest first
func (uc *PaymentUC) ListTransactions(ctx context.Context, externalUserID string) ([]*models.Transaction, error) {
	if externalUserID == "" {
		return nil, payments.ErrInvalidCredentials
	}
	return uc.repo.ListTransactionsByUser(ctx, externalUserID)
}

// createPendingTransaction validates the purchase request and writes the
// unpaid ledger entry. The entry must exist before the gateway is
// contacted so a reconciliation reference exists regardless of outcome.
func (uc *PaymentUC) createPendingTransaction(ctx context.Context, req *models.PaymentRequest) (*models.Transaction, models.Plan, error) {
	if req.ClerkID == "" || req.PlanID == "" {
		return nil, models.Plan{}, payments.ErrInvalidCredentials
	}

	_, err := uc.repo.GetUserByExternalID(ctx, req.ClerkID)
	if err != nil {
		if errors.Is(err, payments.ErrUserNotFound) {
			return nil, models.Plan{}, payments.ErrInvalidCredentials
		}
		return nil, models.Plan{}, fmt.Errorf("failed to look up user: %w", err)
	}

	plan, ok := models.PlanByID(req.PlanID)
	if !ok {
		return nil, models.Plan{}, payments.ErrPlanNotFound
	}

	txn := &models.Transaction{
		ID:             uuid.New().String(),
		ExternalUserID: req.ClerkID,
		PlanID:         plan.ID,
		Amount:         plan.Amount,
		Credits:        plan.Credits,
		Paid:           false,
		CreatedAt:      time.Now(),
	}

	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, models.Plan{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return txn, plan, nil
}

// settle credits the transaction exactly once. The repository's
// conditional update is the idempotency guard, so two concurrent settles
// of the same transaction yield one credit and one already-verified.
func (uc *PaymentUC) settle(ctx context.Context, transactionID string) (*models.ReconcileResult, error) {
	txn, err := uc.repo.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	credited, err := uc.repo.MarkPaidAndCredit(ctx, txn.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to credit transaction: %w", err)
	}
	if !credited {
		return &models.ReconcileResult{Credited: false, Message: models.MsgAlreadyVerified}, nil
	}

	uc.publishCreditEvent(txn)

	return &models.ReconcileResult{Credited: true, Message: models.MsgCreditsAdded}, nil
}

func (uc *PaymentUC) publishCreditEvent(txn *models.Transaction) {
	if uc.events == nil {
		return
	}

	event := &models.CreditEvent{
		TransactionID:  txn.ID,
		ExternalUserID: txn.ExternalUserID,
		PlanID:         txn.PlanID,
		Credits:        txn.Credits,
		Timestamp:      time.Now().UTC(),
	}

	if err := uc.events.PublishCreditsReconciled(event); err != nil {
		// Event delivery is best-effort, the credit already committed
		logger.Error("Failed to publish credit event",
			logger.Err(err),
			logger.String("transaction_id", txn.ID),
		)
	}
}
