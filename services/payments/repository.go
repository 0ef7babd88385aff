package payments

import (
	"context"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swarajreddy10/bg-removal-server/services/payments PaymentRepo

// PaymentRepo represents the transaction ledger repository interface
type PaymentRepo interface {
	GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error)

	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactionsByUser(ctx context.Context, externalUserID string) ([]*models.Transaction, error)

	// MarkPaidAndCredit flips the transaction's paid flag and credits the
	// owning user's balance in one database transaction. It reports false
	// when the flag was already set, which makes concurrent reconciliation
	// attempts safe: at most one caller observes credited=true.
	MarkPaidAndCredit(ctx context.Context, transactionID string) (bool, error)
}
