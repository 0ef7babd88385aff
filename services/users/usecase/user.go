package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/logger"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/users"
)

// ApplyIdentityEvent applies a verified identity event to the user directory.
// The webhook contract is idempotent: duplicate creates and updates of a
// missing user are acknowledged as handled so the provider stops retrying.
func (uc *UserUC) ApplyIdentityEvent(ctx context.Context, event *models.IdentityEvent) error {
	if event == nil || event.Data.ID == "" {
		return fmt.Errorf("identity event payload is missing a user id")
	}

	switch event.Type {
	case models.IdentityUserCreated:
		return uc.applyCreated(ctx, event)
	case models.IdentityUserUpdated:
		return uc.applyUpdated(ctx, event)
	case models.IdentityUserDeleted:
		return uc.userRepo.DeleteUser(ctx, event.Data.ID)
	default:
		logger.Debug("Ignoring unhandled identity event type",
			logger.String("event_type", event.Type),
		)
		return nil
	}
}

func (uc *UserUC) applyCreated(ctx context.Context, event *models.IdentityEvent) error {
	user := &models.User{
		ExternalID: event.Data.ID,
		Email:      event.Data.PrimaryEmail(),
		FirstName:  event.Data.FirstName,
		LastName:   event.Data.LastName,
		PhotoURL:   event.Data.ImageURL,
	}

	err := uc.userRepo.CreateUser(ctx, user)
	if errors.Is(err, users.ErrDuplicateUser) {
		// Webhook redelivery, the user is already synced
		logger.Warn("Identity create for existing user",
			logger.String("clerk_id", event.Data.ID),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (uc *UserUC) applyUpdated(ctx context.Context, event *models.IdentityEvent) error {
	err := uc.userRepo.UpdateUser(ctx, event.Data.ID, event.Data.Profile())
	if errors.Is(err, users.ErrUserNotFound) {
		// Acknowledge so the provider does not retry indefinitely
		logger.Warn("Identity update for unknown user",
			logger.String("clerk_id", event.Data.ID),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// GetCredits returns the current credit balance for a user
func (uc *UserUC) GetCredits(ctx context.Context, externalID string) (int, error) {
	if externalID == "" {
		return 0, users.ErrUserNotFound
	}
	return uc.userRepo.GetCreditBalance(ctx, externalID)
}
