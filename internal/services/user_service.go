package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/baharkarakas/timebank-backend/internal/auth"
	"github.com/baharkarakas/timebank-backend/internal/logger"
	"github.com/baharkarakas/timebank-backend/internal/metrics"
	"github.com/baharkarakas/timebank-backend/internal/models"
	repo "github.com/baharkarakas/timebank-backend/internal/repository"
)

type UserService struct {
	store repo.Store
}

func NewUserService(store repo.Store) *UserService { return &UserService{store: store} }

// Register creates the user and its zero balance in one transaction.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	u := models.User{Username: username, Email: email}
	if err := u.Validate(password); err != nil {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	var created models.User
	err = s.store.WithTx(ctx, func(users repo.Users, balances repo.Balances) error {
		var err error
		if created, err = users.Create(ctx, u); err != nil {
			return err
		}
		_, err = balances.Create(ctx, created.ID)
		return err
	})
	if errors.Is(err, models.ErrUserExists) {
		verr := models.NewValidationError()
		verr.Add("username", models.MsgUsernameTaken)
		return models.User{}, verr
	}
	if err != nil {
		return models.User{}, fmt.Errorf("register %q: %w", u.Username, err)
	}

	metrics.AuthEventsTotal.WithLabelValues("register").Inc()
	logger.FromContext(ctx).Info("user registered",
		slog.String("user_id", created.ID),
		slog.String("username", created.Username),
	)
	return created, nil
}
