package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"loan-api/internal/apperr"
	"loan-api/internal/domain"
)

func TestRegisterThenLogin(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	token, u, err := env.auths.Register(ctx, registerInput("nino_b"))
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotZero(t, u.ID)
	require.Equal(t, domain.RoleUser, u.Role)
	require.False(t, u.IsBlocked)

	claims, err := env.jwt.Parse(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UID)
	require.Equal(t, "nino_b", claims.Username)
	require.Equal(t, "nino_b@example.com", claims.Email)
	require.Equal(t, domain.RoleUser, claims.Role)
	require.False(t, claims.IsBlocked)

	token2, u2, err := env.auths.Login(ctx, "nino_b", "Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	require.Equal(t, u.ID, u2.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	env.registerUser(t, "taken")

	in := registerInput("taken")
	in.Email = "other@example.com"
	_, _, err := env.auths.Register(ctx, in)
	requireKind(t, err, apperr.KindBadRequest)
	require.Contains(t, err.Error(), "username")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	env.registerUser(t, "first")

	in := registerInput("second")
	in.Email = "first@example.com"
	_, _, err := env.auths.Register(ctx, in)
	requireKind(t, err, apperr.KindBadRequest)
	require.Contains(t, err.Error(), "email")
}

// 未知用户名和错误密码必须回完全相同的文案
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	env.registerUser(t, "known")

	_, _, errUnknown := env.auths.Login(ctx, "no_such_user", "Secret123")
	requireKind(t, errUnknown, apperr.KindUnauthorized)

	_, _, errBadPw := env.auths.Login(ctx, "known", "WrongPass1")
	requireKind(t, errBadPw, apperr.KindUnauthorized)

	require.Equal(t, errUnknown.Error(), errBadPw.Error())
}

// 超过 bcrypt 72 字节上限的密码注册必须整体失败，
// 不允许带着空哈希的账户落库
func TestRegisterOverlongPasswordFailsWithoutPersisting(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	in := registerInput("longpass")
	in.Password = "Aa1" + strings.Repeat("x", 80)
	_, _, err := env.auths.Register(ctx, in)
	require.Error(t, err)

	var count int64
	require.NoError(t, env.db.Model(&domain.User{}).Where("username = ?", "longpass").Count(&count).Error)
	require.Zero(t, count)

	_, _, err = env.auths.Login(ctx, "longpass", in.Password)
	requireKind(t, err, apperr.KindUnauthorized)
}

func TestPasswordHashNeverStoredPlain(t *testing.T) {
	env := newEnv(t)

	u := env.registerUser(t, "hashed")
	require.NotEqual(t, "Secret123", u.PasswordHash)
	require.NotEmpty(t, u.PasswordHash)
}
