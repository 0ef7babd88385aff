package models

import (
	"time"
)

// Transaction represents one credit purchase attempt. A row is written
// before the gateway is contacted and is never deleted; paid flips to true
// exactly once when the payment is reconciled.
type Transaction struct {
	ID             string    `json:"id" db:"id"`
	ExternalUserID string    `json:"clerk_id" db:"external_user_id"`
	PlanID         string    `json:"plan" db:"plan_id"`
	Amount         int       `json:"amount" db:"amount"`
	Credits        int       `json:"credits" db:"credits"`
	Paid           bool      `json:"paid" db:"paid"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
