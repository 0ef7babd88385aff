package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/database"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
)

// PaymentRepo implements the transaction ledger on PostgreSQL. It shares
// the users table with the user directory: crediting a balance and marking
// a transaction paid commit atomically in one database transaction.
type PaymentRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *PaymentRepo {
	return &PaymentRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}
