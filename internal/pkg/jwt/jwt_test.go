//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"voucher-seckill/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("secret")

	t.Run("round trip keeps user and role", func(t *testing.T) {
		token, err := svc.GenerateToken(42, jwt.RoleCustomer, time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, jwt.RoleCustomer, claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(42, jwt.RoleCustomer, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign secret", func(t *testing.T) {
		token, err := jwt.NewService("other").GenerateToken(42, jwt.RoleCustomer, time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := svc.GenerateToken(0, jwt.RoleCustomer, time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
