package users

import (
	"context"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swarajreddy10/bg-removal-server/services/users UserRepo

// UserRepo represents the user directory repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, externalID string, profile *models.UserProfile) error
	DeleteUser(ctx context.Context, externalID string) error
	GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error)

	// GetCreditBalance reads through the balance cache
	GetCreditBalance(ctx context.Context, externalID string) (int, error)
}
