package models

import (
	"time"
)

// PaymentRequest represents a request to purchase a credit plan
type PaymentRequest struct {
	ClerkID string `json:"clerk_id"`
	PlanID  string `json:"plan_id"`
	// Origin is the requesting frontend origin, used to build checkout
	// redirect URLs. Taken from the Origin header, not the JSON body.
	Origin string `json:"-"`
}

// ReconcileResult is the outcome of a payment reconciliation attempt
type ReconcileResult struct {
	Credited bool   `json:"credited"`
	Message  string `json:"message"`
}

// Reconciliation outcome messages, stable API strings
const (
	MsgPaymentFailed   = "Payment Failed"
	MsgAlreadyVerified = "Payment Already Verified"
	MsgCreditsAdded    = "Credits Added"
)

// RazorpayOrder mirrors the order object returned by the Razorpay orders API
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// RazorpayOrderStatusPaid is the authoritative paid status reported by
// the orders API.
const RazorpayOrderStatusPaid = "paid"

// CheckoutParams are the inputs for a Stripe checkout session
type CheckoutParams struct {
	AmountMinor int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the hosted checkout session handle returned by Stripe
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreditEvent is published after a transaction is successfully credited
type CreditEvent struct {
	TransactionID  string    `json:"transaction_id"`
	ExternalUserID string    `json:"clerk_id"`
	PlanID         string    `json:"plan"`
	Credits        int       `json:"credits"`
	Timestamp      time.Time `json:"timestamp"`
}
