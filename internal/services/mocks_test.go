package services

import (
	"context"
	"time"

	"github.com/baharkarakas/timebank-backend/internal/models"
	repo "github.com/baharkarakas/timebank-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) Create(ctx context.Context, u models.User) (models.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UsersMock) GetByUsername(ctx context.Context, username string) (models.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.User), args.Error(1)
}

type BalancesMock struct{ mock.Mock }

func (m *BalancesMock) Create(ctx context.Context, userID string) (models.Balance, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.Balance), args.Error(1)
}

func (m *BalancesMock) Get(ctx context.Context, owner string) (models.Balance, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(models.Balance), args.Error(1)
}

func (m *BalancesMock) Add(ctx context.Context, owner string, minutes int64) (models.Balance, error) {
	args := m.Called(ctx, owner, minutes)
	return args.Get(0).(models.Balance), args.Error(1)
}

func (m *BalancesMock) Set(ctx context.Context, owner string, seconds int64) (models.Balance, error) {
	args := m.Called(ctx, owner, seconds)
	return args.Get(0).(models.Balance), args.Error(1)
}

type RevocationsMock struct{ mock.Mock }

func (m *RevocationsMock) Revoke(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, sessionID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *RevocationsMock) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

// txStore hands the same mocks to fn, standing in for a database transaction.
type txStore struct {
	users    repo.Users
	balances repo.Balances
}

func (s *txStore) WithTx(_ context.Context, fn func(repo.Users, repo.Balances) error) error {
	return fn(s.users, s.balances)
}
