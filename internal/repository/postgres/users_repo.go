package postgres

import (
	"context"
	"fmt"

	"github.com/baharkarakas/timebank-backend/internal/models"
	"github.com/baharkarakas/timebank-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ repository.Users = (*usersRepo)(nil)

type usersRepo struct{ db DBTX }

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO users(id, username, email, password_hash)
		 VALUES(@id, @username, @email, @password_hash)
		 RETURNING created_at, updated_at`,
		pgx.NamedArgs{
			"id":            u.ID,
			"username":      u.Username,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
		},
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", mapErr(err))
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at
		   FROM users
		  WHERE username=$1`, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %q: %w", username, mapErr(err))
	}
	return u, nil
}
