package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/constants"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/logger"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/payments"
)

// GetUserByExternalID retrieves the purchasing user
func (r *PaymentRepo) GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `SELECT * FROM users WHERE external_id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateTransaction inserts a new unpaid ledger entry
func (r *PaymentRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, external_user_id, plan_id, amount,
			credits, paid, created_at
		) VALUES (:id, :external_user_id, :plan_id, :amount,
			:credits, :paid, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a ledger entry by id
func (r *PaymentRepo) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE id = $1`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// ListTransactionsByUser returns a user's purchase attempts, newest first
func (r *PaymentRepo) ListTransactionsByUser(ctx context.Context, externalUserID string) ([]*models.Transaction, error) {
	query := `
		SELECT * FROM transactions
		WHERE external_user_id = $1
		ORDER BY created_at DESC
	`

	txns := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, externalUserID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, nil
}

// MarkPaidAndCredit flips paid and credits the owning user inside one
// database transaction. The conditional UPDATE on the paid flag is the
// idempotency guard: concurrent callers serialize on the row lock and
// only the first sees a row flip.
func (r *PaymentRepo) MarkPaidAndCredit(ctx context.Context, transactionID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		externalUserID string
		credits        int
	)
	flip := `
		UPDATE transactions
		SET paid = TRUE
		WHERE id = $1 AND paid = FALSE
		RETURNING external_user_id, credits
	`
	err = tx.QueryRowxContext(ctx, flip, transactionID).Scan(&externalUserID, &credits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Already paid, or the id vanished. Either way nothing to credit.
			return false, nil
		}
		return false, fmt.Errorf("failed to mark transaction paid: %w", err)
	}

	credit := `
		UPDATE users
		SET credit_balance = credit_balance + $1, updated_at = NOW()
		WHERE external_id = $2
	`
	res, err := tx.ExecContext(ctx, credit, credits, externalUserID)
	if err != nil {
		return false, fmt.Errorf("failed to credit user balance: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read credit result: %w", err)
	}
	if rows == 0 {
		// The owning user was deleted after initiation. Roll back so the
		// entry stays unpaid instead of committing a credit nobody holds.
		return false, fmt.Errorf("failed to credit user balance: %w", payments.ErrUserNotFound)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.invalidateCredits(ctx, externalUserID)

	return true, nil
}

func (r *PaymentRepo) invalidateCredits(ctx context.Context, externalUserID string) {
	if r.cache == nil {
		return
	}
	key := fmt.Sprintf(constants.KeyUserCredits, externalUserID)
	if err := r.cache.Delete(ctx, key); err != nil {
		logger.Warn("Credit balance cache invalidation failed",
			logger.String("clerk_id", externalUserID),
			logger.Err(err),
		)
	}
}
