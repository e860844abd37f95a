//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"weekend-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-unit-only"

func TestService(t *testing.T) {
	adminID := uuid.New()

	t.Run("発行したトークンを検証できる", func(t *testing.T) {
		svc := jwt.NewService(secret, time.Hour)

		token, expiresAt, err := svc.GenerateToken(adminID, "owner@example.com")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, adminID, claims.AdminID)
		assert.Equal(t, "owner@example.com", claims.Email)
		assert.Equal(t, adminID.String(), claims.Subject)
	})

	t.Run("期限切れ", func(t *testing.T) {
		svc := jwt.NewService(secret, -time.Minute)
		token, _, err := svc.GenerateToken(adminID, "owner@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("別の鍵で署名されたトークン", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Hour)
		token, _, err := other.GenerateToken(adminID, "owner@example.com")
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("壊れたトークン", func(t *testing.T) {
		_, err := jwt.NewService(secret, time.Hour).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("管理者IDが空のトークン", func(t *testing.T) {
		svc := jwt.NewService(secret, time.Hour)
		token, _, err := svc.GenerateToken(uuid.Nil, "owner@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
