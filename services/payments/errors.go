package payments

import "errors"

// Domain errors for the payment flow
var (
	// ErrInvalidCredentials is returned when the user or plan id is
	// missing, or the user does not exist
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPlanNotFound is returned for a plan id absent from the plan table
	ErrPlanNotFound = errors.New("plan not found")

	// ErrUserNotFound is returned when the purchasing user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when no ledger entry matches the
	// reconciliation reference
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrGatewayUnavailable is returned for operations against a gateway
	// that was not configured at startup
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
