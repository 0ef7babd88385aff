package users

import "errors"

// Domain errors for the user directory
var (
	// ErrDuplicateUser is returned when a create collides with an existing
	// external id. Identity webhooks treat it as already-handled.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUserNotFound is returned when no user matches the external id
	ErrUserNotFound = errors.New("user not found")
)
