package models

import (
	"time"
)

// User represents a user synchronized from the external identity provider
type User struct {
	ID            string    `json:"id" db:"id"`
	ExternalID    string    `json:"clerk_id" db:"external_id"`
	Email         string    `json:"email" db:"email"`
	FirstName     string    `json:"first_name" db:"first_name"`
	LastName      string    `json:"last_name" db:"last_name"`
	PhotoURL      string    `json:"photo" db:"photo_url"`
	CreditBalance int       `json:"credit_balance" db:"credit_balance"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UserProfile carries the identity-owned fields of a user.
// Credit balance is deliberately absent: it is only mutated by payment
// reconciliation, never by identity events.
type UserProfile struct {
	Email     string `json:"email" db:"email"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	PhotoURL  string `json:"photo" db:"photo_url"`
}
