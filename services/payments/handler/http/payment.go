package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/logger"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/internal/utils"
	"github.com/swarajreddy10/bg-removal-server/services/payments"
)

// PaymentHandler handles HTTP requests for purchases and reconciliation
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// InitiateRazorpay handles pull-style purchase initiation
func (h *PaymentHandler) InitiateRazorpay(c echo.Context) error {
	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	order, err := h.paymentUC.InitiateRazorpayPayment(c.Request().Context(), &req)
	if err != nil {
		return h.initiationError(c, err, &req)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"order": order,
	})
}

// VerifyRazorpay handles pull-style reconciliation against the gateway's
// authoritative order status
func (h *PaymentHandler) VerifyRazorpay(c echo.Context) error {
	var req struct {
		OrderID string `json:"razorpay_order_id"`
	}
	if err := c.Bind(&req); err != nil || req.OrderID == "" {
		return utils.BadRequestResponse(c, "razorpay_order_id is required")
	}

	result, err := h.paymentUC.VerifyRazorpayPayment(c.Request().Context(), req.OrderID)
	if err != nil {
		return h.reconcileError(c, err, req.OrderID)
	}

	return h.reconcileOutcome(c, result)
}

// InitiateStripe handles push-style purchase initiation
func (h *PaymentHandler) InitiateStripe(c echo.Context) error {
	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.Origin = c.Request().Header.Get("Origin")

	session, err := h.paymentUC.InitiateStripePayment(c.Request().Context(), &req)
	if err != nil {
		return h.initiationError(c, err, &req)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"session_url": session.URL,
	})
}

// VerifyStripe handles push-style reconciliation from the checkout
// redirect's claimed outcome
func (h *PaymentHandler) VerifyStripe(c echo.Context) error {
	var req struct {
		TransactionID string `json:"transactionId"`
		Success       string `json:"success"`
	}
	if err := c.Bind(&req); err != nil || req.TransactionID == "" {
		return utils.BadRequestResponse(c, "transactionId is required")
	}

	result, err := h.paymentUC.VerifyStripePayment(c.Request().Context(), req.TransactionID, req.Success == "true")
	if err != nil {
		return h.reconcileError(c, err, req.TransactionID)
	}

	return h.reconcileOutcome(c, result)
}

// ListPlans exposes the static plan table
func (h *PaymentHandler) ListPlans(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"plans": models.PlanList(),
	})
}

// ListTransactions returns a user's purchase history
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	clerkID := c.QueryParam("clerk_id")
	if clerkID == "" {
		return utils.BadRequestResponse(c, "clerk_id is required")
	}

	txns, err := h.paymentUC.ListTransactions(c.Request().Context(), clerkID)
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.Err(err),
			logger.String("clerk_id", clerkID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"transactions": txns,
	})
}

// initiationError maps initiation failures onto the response policy:
// validation outcomes are success=false with HTTP 200, infrastructure
// failures are HTTP 500.
func (h *PaymentHandler) initiationError(c echo.Context, err error, req *models.PaymentRequest) error {
	switch {
	case errors.Is(err, payments.ErrInvalidCredentials):
		return utils.FailureResponse(c, "Invalid Credentials")
	case errors.Is(err, payments.ErrPlanNotFound):
		return utils.FailureResponse(c, "Plan not found")
	case errors.Is(err, payments.ErrGatewayUnavailable):
		return utils.InternalServerErrorResponse(c, "Payment gateway unavailable")
	default:
		logger.Error("Payment initiation failed",
			logger.Err(err),
			logger.String("clerk_id", req.ClerkID),
			logger.String("plan_id", req.PlanID),
		)
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}

func (h *PaymentHandler) reconcileError(c echo.Context, err error, ref string) error {
	switch {
	case errors.Is(err, payments.ErrTransactionNotFound):
		return utils.FailureResponse(c, "Transaction not found")
	case errors.Is(err, payments.ErrGatewayUnavailable):
		return utils.InternalServerErrorResponse(c, "Payment gateway unavailable")
	default:
		logger.Error("Payment reconciliation failed",
			logger.Err(err),
			logger.String("reference", ref),
		)
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}

// reconcileOutcome renders a reconciliation result. Declined and
// already-verified outcomes are business results, not errors.
func (h *PaymentHandler) reconcileOutcome(c echo.Context, result *models.ReconcileResult) error {
	if !result.Credited {
		return utils.FailureResponse(c, result.Message)
	}
	return utils.SuccessResponse(c, http.StatusOK, result.Message, nil)
}
