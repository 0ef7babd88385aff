package users

import (
	"context"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swarajreddy10/bg-removal-server/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// ApplyIdentityEvent applies a verified identity-provider event to the
	// user directory
	ApplyIdentityEvent(ctx context.Context, event *models.IdentityEvent) error

	// GetCredits returns the current credit balance for a user
	GetCredits(ctx context.Context, externalID string) (int, error)
}
