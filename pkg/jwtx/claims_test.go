package jwtx_test

import (
	"testing"
	"time"

	"github.com/agromaps/agromaps-go/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// mintToken signs a throwaway HS256 token. The signature is irrelevant to
// Inspect, which never verifies, but a real signing pass produces a
// structurally valid JWT.
func mintToken(t *testing.T, claims jwtx.Claims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspect(t *testing.T) {
	t.Parallel()

	t.Run("reads claims without verification", func(t *testing.T) {
		exp := time.Now().Add(15 * time.Minute)
		token := mintToken(t, jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(exp),
			},
			Username: "alice",
			Role:     "admin",
		})

		claims, err := jwtx.Inspect(token)
		require.NoError(t, err)
		require.Equal(t, "alice", claims.Username)
		require.Equal(t, "admin", claims.Role)
		require.WithinDuration(t, exp, claims.ExpiresAt(), time.Second)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := jwtx.Inspect("")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("rejects opaque token", func(t *testing.T) {
		_, err := jwtx.Inspect("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestExpiryWindows(t *testing.T) {
	t.Parallel()

	t.Run("expires within window", func(t *testing.T) {
		token := mintToken(t, jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Second)),
			},
		})

		claims, err := jwtx.Inspect(token)
		require.NoError(t, err)
		require.True(t, claims.ExpiresWithin(time.Minute))
		require.False(t, claims.ExpiresWithin(time.Second))
		require.False(t, claims.Expired())
	})

	t.Run("expired token", func(t *testing.T) {
		token := mintToken(t, jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})

		claims, err := jwtx.Inspect(token)
		require.NoError(t, err)
		require.True(t, claims.Expired())
	})

	t.Run("no exp claim never expires client-side", func(t *testing.T) {
		token := mintToken(t, jwtx.Claims{Username: "bob"})

		claims, err := jwtx.Inspect(token)
		require.NoError(t, err)
		require.True(t, claims.ExpiresAt().IsZero())
		require.False(t, claims.ExpiresWithin(24 * time.Hour))
	})
}
