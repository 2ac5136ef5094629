package postgres

import (
	"context"
	"fmt"

	repo "github.com/baharkarakas/timebank-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Users    repo.Users
	Balances repo.Balances
	Store    repo.Store
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    &usersRepo{db: pool},
		Balances: &balancesRepo{db: pool},
		Store:    &store{pool: pool},
	}
}

var _ repo.Store = (*store)(nil)

type store struct{ pool *pgxpool.Pool }

func (s *store) WithTx(ctx context.Context, fn func(repo.Users, repo.Balances) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&usersRepo{db: tx}, &balancesRepo{db: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
