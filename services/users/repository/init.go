package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/database"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
)

// UserRepo implements the user directory on PostgreSQL with a Redis
// balance cache
type UserRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}
