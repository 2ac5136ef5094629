package postgres

import (
	"context"
	"fmt"

	"github.com/baharkarakas/timebank-backend/internal/models"
	"github.com/baharkarakas/timebank-backend/internal/repository"
)

var _ repository.Balances = (*balancesRepo)(nil)

type balancesRepo struct{ db DBTX }

func (r *balancesRepo) Create(ctx context.Context, userID string) (models.Balance, error) {
	b := models.Balance{UserID: userID}
	err := r.db.QueryRow(ctx,
		`INSERT INTO balances(user_id, remaining_seconds, updated_at)
		 VALUES($1, 0, now())
		 RETURNING (SELECT username FROM users WHERE id=$1), remaining_seconds, updated_at`,
		userID,
	).Scan(&b.Owner, &b.Seconds, &b.UpdatedAt)
	if err != nil {
		return models.Balance{}, fmt.Errorf("create balance: %w", mapErr(err))
	}
	return b, nil
}

func (r *balancesRepo) Get(ctx context.Context, owner string) (models.Balance, error) {
	var b models.Balance
	err := r.db.QueryRow(ctx,
		`SELECT b.user_id, u.username, b.remaining_seconds, b.updated_at
		   FROM balances b
		   JOIN users u ON u.id = b.user_id
		  WHERE u.username=$1`,
		owner,
	).Scan(&b.UserID, &b.Owner, &b.Seconds, &b.UpdatedAt)
	if err != nil {
		return models.Balance{}, fmt.Errorf("get balance %q: %w", owner, mapErr(err))
	}
	return b, nil
}

func (r *balancesRepo) Add(ctx context.Context, owner string, minutes int64) (models.Balance, error) {
	return r.update(ctx,
		`UPDATE balances b
		    SET remaining_seconds = b.remaining_seconds + $2::bigint * 60,
		        updated_at = now()
		   FROM users u
		  WHERE u.id = b.user_id AND u.username = $1
		  RETURNING b.user_id, u.username, b.remaining_seconds, b.updated_at`,
		owner, minutes,
	)
}

func (r *balancesRepo) Set(ctx context.Context, owner string, seconds int64) (models.Balance, error) {
	return r.update(ctx,
		`UPDATE balances b
		    SET remaining_seconds = $2::bigint,
		        updated_at = now()
		   FROM users u
		  WHERE u.id = b.user_id AND u.username = $1
		  RETURNING b.user_id, u.username, b.remaining_seconds, b.updated_at`,
		owner, seconds,
	)
}

func (r *balancesRepo) update(ctx context.Context, q, owner string, v int64) (models.Balance, error) {
	var b models.Balance
	err := r.db.QueryRow(ctx, q, owner, v).Scan(&b.UserID, &b.Owner, &b.Seconds, &b.UpdatedAt)
	if err != nil {
		return models.Balance{}, fmt.Errorf("update balance %q: %w", owner, mapErr(err))
	}
	return b, nil
}
