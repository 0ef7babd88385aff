package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/constants"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/logger"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/users"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint breaks
const pgUniqueViolation = "23505"

// CreateUser inserts a new user keyed by external id
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, external_id, email, first_name, last_name,
			photo_url, credit_balance, created_at, updated_at
		) VALUES (:id, :external_id, :email, :first_name, :last_name,
			:photo_url, :credit_balance, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return users.ErrDuplicateUser
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUser mutates the identity-owned profile fields of a user
func (r *UserRepo) UpdateUser(ctx context.Context, externalID string, profile *models.UserProfile) error {
	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, photo_url = $4,
			updated_at = $5
		WHERE external_id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		profile.Email,
		profile.FirstName,
		profile.LastName,
		profile.PhotoURL,
		time.Now(),
		externalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user by external id. Deleting a missing user is a
// no-op per the idempotent webhook contract.
func (r *UserRepo) DeleteUser(ctx context.Context, externalID string) error {
	query := `DELETE FROM users WHERE external_id = $1`
	if _, err := r.db.ExecContext(ctx, query, externalID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.invalidateCredits(ctx, externalID)
	return nil
}

// GetUserByExternalID retrieves a user by external id
func (r *UserRepo) GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `SELECT * FROM users WHERE external_id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetCreditBalance returns the credit balance for a user, reading through
// the Redis cache. Cache failures fall back to the database.
func (r *UserRepo) GetCreditBalance(ctx context.Context, externalID string) (int, error) {
	key := fmt.Sprintf(constants.KeyUserCredits, externalID)

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, key)
		if err == nil {
			if balance, convErr := strconv.Atoi(cached); convErr == nil {
				return balance, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("Credit balance cache read failed",
				logger.String("clerk_id", externalID),
				logger.Err(err),
			)
		}
	}

	var balance int
	query := `SELECT credit_balance FROM users WHERE external_id = $1`
	err := r.db.GetContext(ctx, &balance, query, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, users.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get credit balance: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, balance, constants.UserCreditsTTL); err != nil {
			logger.Warn("Credit balance cache write failed",
				logger.String("clerk_id", externalID),
				logger.Err(err),
			)
		}
	}

	return balance, nil
}

func (r *UserRepo) invalidateCredits(ctx context.Context, externalID string) {
	if r.cache == nil {
		return
	}
	key := fmt.Sprintf(constants.KeyUserCredits, externalID)
	if err := r.cache.Delete(ctx, key); err != nil {
		logger.Warn("Credit balance cache invalidation failed",
			logger.String("clerk_id", externalID),
			logger.Err(err),
		)
	}
}
