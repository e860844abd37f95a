//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, adminID uuid.UUID, email string) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(adminID, email)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, adminID uuid.UUID, email string) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(adminID, email)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}

// ForgedToken is signed with a different secret.
func (h *JWTHelper) ForgedToken(t *testing.T, adminID uuid.UUID, email string) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret+"-forged", h.cfg.Duration).GenerateToken(adminID, email)
	require.NoError(t, err)
	return token
}
