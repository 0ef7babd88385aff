package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/payments/handler/http"
)

// Handler coordinates HTTP handlers for the payments service
type Handler struct {
	paymentHandler *http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *http.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payments service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	paymentGroup := e.Group("/api/payments")
	paymentGroup.GET("/plans", h.paymentHandler.ListPlans)
	paymentGroup.GET("/transactions", h.paymentHandler.ListTransactions)
	paymentGroup.POST("/razorpay", h.paymentHandler.InitiateRazorpay)
	paymentGroup.POST("/razorpay/verify", h.paymentHandler.VerifyRazorpay)
	paymentGroup.POST("/stripe", h.paymentHandler.InitiateStripe)
	paymentGroup.POST("/stripe/verify", h.paymentHandler.VerifyStripe)
}
