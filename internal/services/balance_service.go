package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/baharkarakas/timebank-backend/internal/logger"
	"github.com/baharkarakas/timebank-backend/internal/metrics"
	"github.com/baharkarakas/timebank-backend/internal/models"
	repo "github.com/baharkarakas/timebank-backend/internal/repository"
)

type BalanceService struct {
	balances repo.Balances
	users    repo.Users
}

func NewBalanceService(b repo.Balances, u repo.Users) *BalanceService {
	return &BalanceService{balances: b, users: u}
}

func (s *BalanceService) Get(ctx context.Context, owner string) (models.Balance, error) {
	b, err := s.balances.Get(ctx, owner)
	return b, s.observe(ctx, "get", owner, err)
}

// AddMinutes credits (or, for negative minutes, debits) whole minutes.
// Results below zero are allowed.
func (s *BalanceService) AddMinutes(ctx context.Context, owner string, minutes int64) (models.Balance, error) {
	b, err := s.balances.Add(ctx, owner, minutes)
	if err := s.observe(ctx, "add", owner, err); err != nil {
		return models.Balance{}, err
	}
	if minutes >= 0 {
		metrics.MinutesCredited.Add(float64(minutes))
	} else {
		metrics.MinutesDebited.Add(-float64(minutes))
	}
	logger.FromContext(ctx).Info("balance incremented",
		slog.String("owner", owner),
		slog.Int64("add_minutes", minutes),
		slog.Int64("remaining_seconds", b.Seconds),
	)
	return b, nil
}

// SetSeconds overwrites the balance with an exact number of seconds.
func (s *BalanceService) SetSeconds(ctx context.Context, owner string, seconds int64) (models.Balance, error) {
	b, err := s.balances.Set(ctx, owner, seconds)
	if err := s.observe(ctx, "set", owner, err); err != nil {
		return models.Balance{}, err
	}
	logger.FromContext(ctx).Info("balance overwritten",
		slog.String("owner", owner),
		slog.Int64("remaining_seconds", b.Seconds),
	)
	return b, nil
}

func (s *BalanceService) observe(ctx context.Context, op, owner string, err error) error {
	switch {
	case err == nil:
		metrics.BalanceOpsTotal.WithLabelValues(op, "ok").Inc()
	case errors.Is(err, models.ErrNotFound):
		metrics.BalanceOpsTotal.WithLabelValues(op, "not_found").Inc()
		s.checkIntegrity(ctx, owner)
	default:
		metrics.BalanceOpsTotal.WithLabelValues(op, "error").Inc()
	}
	return err
}

// Every user gets a balance at registration, so a user without one is a
// data fault worth an error log. The caller still sees a plain 404.
func (s *BalanceService) checkIntegrity(ctx context.Context, owner string) {
	if s.users == nil {
		return
	}
	if _, err := s.users.GetByUsername(ctx, owner); err == nil {
		logger.FromContext(ctx).Error("user has no balance record", slog.String("owner", owner))
	}
}
