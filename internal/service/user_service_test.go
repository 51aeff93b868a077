package service

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"loan-api/internal/apperr"
	"loan-api/internal/core/cache"
	"loan-api/internal/repo"
)

func TestGetByID(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	u := env.registerUser(t, "profile")

	got, err := env.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, got.Username)

	_, err = env.users.GetByID(ctx, 9999)
	requireKind(t, err, apperr.KindNotFound)
}

func TestGetCurrentUser(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	u := env.registerUser(t, "whoami")

	got, err := env.users.GetCurrentUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.Email, got.Email)
}

// 查不到的 id 不许被缓存钉死：该用户随后注册，下一次读必须命中
func TestGetByIDMissNotPinnedByCache(t *testing.T) {
	mr := miniredis.RunT(t)
	db := newTestDB(t)
	c := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.RDB.Close() })

	userRepo := repo.NewUserRepo(db)
	users := NewUserService(userRepo, c, zap.NewNop())
	ctx := context.Background()

	_, err := users.GetByID(ctx, 1)
	requireKind(t, err, apperr.KindNotFound)

	auths := NewAuthService(userRepo, newEnvJWTer(), zap.NewNop())
	_, u, err := auths.Register(ctx, registerInput("latecomer"))
	require.NoError(t, err)
	require.Equal(t, uint(1), u.ID)

	got, err := users.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "latecomer", got.Username)
}

// 重复封禁/解封是幂等操作
func TestSetBlockedIdempotent(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	u := env.registerUser(t, "blockee")

	require.NoError(t, env.users.SetBlocked(ctx, u.ID, true))
	require.NoError(t, env.users.SetBlocked(ctx, u.ID, true))

	got, err := env.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.IsBlocked)

	require.NoError(t, env.users.SetBlocked(ctx, u.ID, false))
	require.NoError(t, env.users.SetBlocked(ctx, u.ID, false))

	got, err = env.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.IsBlocked)
}

func TestSetBlockedUnknownUser(t *testing.T) {
	env := newEnv(t)

	err := env.users.SetBlocked(context.Background(), 9999, true)
	requireKind(t, err, apperr.KindNotFound)
}

func TestAccountantCannotBeBlocked(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	acc := env.seedAccountant(t)

	err := env.users.SetBlocked(ctx, acc.ID, true)
	requireKind(t, err, apperr.KindBadRequest)

	err = env.users.SetBlocked(ctx, acc.ID, false)
	requireKind(t, err, apperr.KindBadRequest)

	got, err := env.users.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	require.False(t, got.IsBlocked)
}
