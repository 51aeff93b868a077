package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"loan-api/internal/domain"
)

func newTestJWTer() *JWTer {
	return &JWTer{Secret: []byte("unit-test-secret"), Issuer: "loan-api-test", TTL: time.Hour}
}

func TestIssueParseRoundTrip(t *testing.T) {
	j := newTestJWTer()
	u := &domain.User{
		ID:        42,
		Username:  "roundtrip",
		Email:     "roundtrip@example.com",
		Role:      domain.RoleAccountant,
		IsBlocked: true,
	}

	token, err := j.Issue(u)
	require.NoError(t, err)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UID)
	require.Equal(t, "roundtrip", claims.Username)
	require.Equal(t, "roundtrip@example.com", claims.Email)
	require.Equal(t, domain.RoleAccountant, claims.Role)
	require.True(t, claims.IsBlocked)

	id := claims.Identity()
	require.Equal(t, uint(42), id.UserID)
	require.Equal(t, domain.RoleAccountant, id.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := newTestJWTer()
	token, err := j.Issue(&domain.User{ID: 1, Username: "u", Role: domain.RoleUser})
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("different-secret"), Issuer: j.Issuer, TTL: j.TTL}
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	j := newTestJWTer()
	_, err := j.Parse("not-a-token")
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	j := newTestJWTer()
	j.TTL = -2 * time.Minute // 过期时间早于 leeway 窗口

	token, err := j.Issue(&domain.User{ID: 1, Username: "u", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = j.Parse(token)
	require.Error(t, err)
}
