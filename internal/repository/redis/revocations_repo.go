package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/baharkarakas/timebank-backend/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:session:"

var _ repository.Revocations = (*RevocationsRepo)(nil)

// RevocationsRepo keeps logged-out session ids until their refresh token
// would have expired anyway.
type RevocationsRepo struct {
	rdb goredis.UniversalClient
}

func NewRevocationsRepo(rdb goredis.UniversalClient) *RevocationsRepo {
	return &RevocationsRepo{rdb: rdb}
}

// Revoke reports false when the session was already revoked.
func (r *RevocationsRepo) Revoke(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Second
	}
	ok, err := r.rdb.SetNX(ctx, keyPrefix+sessionID, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("revoke session: %w", err)
	}
	return ok, nil
}

func (r *RevocationsRepo) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

// NewClient connects and pings.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
