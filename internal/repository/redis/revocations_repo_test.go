package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*RevocationsRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	rdb, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRevocationsRepo(rdb), mr
}

func TestRevocationsRepo_RevokeOnce(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	ok, err := repo.Revoke(ctx, "sid-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Revoke(ctx, "sid-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "second revoke must report already revoked")

	revoked, err = repo.IsRevoked(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"sid-1"))
}

func TestRevocationsRepo_Expires(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Revoke(ctx, "sid-2", time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	revoked, err := repo.IsRevoked(ctx, "sid-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
