package repository

import (
	"context"
	"time"

	"github.com/baharkarakas/timebank-backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

// Balances owns the remaining-time record. Add and Set are single atomic
// statements; both return models.ErrNotFound when owner has no record.
type Balances interface {
	Create(ctx context.Context, userID string) (models.Balance, error)
	Get(ctx context.Context, owner string) (models.Balance, error)
	Add(ctx context.Context, owner string, minutes int64) (models.Balance, error)
	Set(ctx context.Context, owner string, seconds int64) (models.Balance, error)
}

// Store runs fn inside one database transaction with tx-bound repositories.
type Store interface {
	WithTx(ctx context.Context, fn func(users Users, balances Balances) error) error
}

// Revocations is the denylist of logged-out sessions.
type Revocations interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
