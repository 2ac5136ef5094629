package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/baharkarakas/timebank-backend/internal/auth"
	"github.com/baharkarakas/timebank-backend/internal/logger"
	"github.com/baharkarakas/timebank-backend/internal/metrics"
	"github.com/baharkarakas/timebank-backend/internal/models"
	repo "github.com/baharkarakas/timebank-backend/internal/repository"
)

type AuthService struct {
	users       repo.Users
	balances    repo.Balances
	revocations repo.Revocations
	tm          *auth.TokenManager
}

func NewAuthService(u repo.Users, b repo.Balances, r repo.Revocations, tm *auth.TokenManager) *AuthService {
	return &AuthService{users: u, balances: b, revocations: r, tm: tm}
}

type LoginResult struct {
	User    models.User
	Balance models.Balance
	Tokens  auth.Pair
}

// Login returns models.ErrInvalidCredentials for unknown users and bad
// passwords alike.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	log := logger.FromContext(ctx)

	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		auth.BurnPasswordCheck(password)
		metrics.AuthEventsTotal.WithLabelValues("login_failed").Inc()
		return LoginResult{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		metrics.AuthEventsTotal.WithLabelValues("login_failed").Inc()
		return LoginResult{}, models.ErrInvalidCredentials
	}

	b, err := s.balances.Get(ctx, u.Username)
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.Error("user has no balance record", slog.String("owner", u.Username))
		b = models.Balance{UserID: u.ID, Owner: u.Username}
	case err != nil:
		return LoginResult{}, err
	}

	pair, err := s.tm.GeneratePair(u.ID, u.Username)
	if err != nil {
		return LoginResult{}, err
	}

	metrics.AuthEventsTotal.WithLabelValues("login").Inc()
	log.Info("user logged in", slog.String("username", u.Username), slog.String("sid", pair.SessionID))
	return LoginResult{User: u, Balance: b, Tokens: pair}, nil
}

// Refresh mints a new access token for a live session.
func (s *AuthService) Refresh(ctx context.Context, refresh string) (string, error) {
	claims, err := s.tm.ParseRefresh(refresh)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrTokenInvalid, err)
	}
	if err := s.ensureLive(ctx, claims.SessionID); err != nil {
		return "", err
	}

	access, _, err := s.tm.NewAccess(claims)
	if err != nil {
		return "", err
	}
	metrics.AuthEventsTotal.WithLabelValues("refresh").Inc()
	return access, nil
}

// Logout revokes the whole session, so access tokens minted from the same
// refresh token stop working too.
func (s *AuthService) Logout(ctx context.Context, refresh string) error {
	claims, err := s.tm.ParseRefresh(refresh)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrTokenInvalid, err)
	}

	ttl := time.Until(claims.ExpiresAt.Time) + s.tm.AccessTTL()
	fresh, err := s.revocations.Revoke(ctx, claims.SessionID, ttl)
	if err != nil {
		return err
	}
	if !fresh {
		return models.ErrTokenRevoked
	}

	metrics.AuthEventsTotal.WithLabelValues("logout").Inc()
	logger.FromContext(ctx).Info("session revoked",
		slog.String("username", claims.Username),
		slog.String("sid", claims.SessionID),
	)
	return nil
}

// Authenticate validates an access token and checks the revocation list on
// every call.
func (s *AuthService) Authenticate(ctx context.Context, access string) (*auth.Claims, error) {
	claims, err := s.tm.ParseAccess(access)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("token_rejected").Inc()
		return nil, fmt.Errorf("%w: %w", models.ErrTokenInvalid, err)
	}
	if err := s.ensureLive(ctx, claims.SessionID); err != nil {
		metrics.AuthEventsTotal.WithLabelValues("token_rejected").Inc()
		return nil, err
	}
	return claims, nil
}

func (s *AuthService) ensureLive(ctx context.Context, sid string) error {
	revoked, err := s.revocations.IsRevoked(ctx, sid)
	if err != nil {
		return fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return models.ErrTokenRevoked
	}
	return nil
}
