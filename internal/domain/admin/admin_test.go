//go:build unit

package admin_test

import (
	"strings"
	"testing"
	"time"

	"weekend-booking/internal/domain/admin"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "有効なメールアドレスOK", input: "owner@example.com", want: "owner@example.com"},
		{name: "大文字と空白は正規化", input: "  Owner@Example.COM ", want: "owner@example.com"},
		{name: "空NG", input: "", errIs: admin.ErrInvalidEmail},
		{name: "@なしNG", input: "owner.example.com", errIs: admin.ErrInvalidEmail},
		{name: "TLDなしNG", input: "owner@example", errIs: admin.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := admin.NewEmail(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestPassword(t *testing.T) {
	_, err := admin.NewPassword("short")
	assert.ErrorIs(t, err, admin.ErrPasswordTooWeak)

	p, err := admin.NewPassword(strings.Repeat("x", 8))
	require.NoError(t, err)
	assert.Equal(t, "xxxxxxxx", p.Value())
}

func TestCredentials(t *testing.T) {
	t.Run("どちらの不備でも同じエラー", func(t *testing.T) {
		_, err := admin.NewCredentials("not-an-email", "password123")
		assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

		_, err = admin.NewCredentials("owner@example.com", "")
		assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
	})

	t.Run("ログイン時は長さを問わない", func(t *testing.T) {
		c, err := admin.NewCredentials("Owner@example.com", "abc")
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", c.Email().Value())
		assert.Equal(t, "abc", c.Password().Value())
	})
}

func TestNewAdmin(t *testing.T) {
	email, err := admin.NewEmail("owner@example.com")
	require.NoError(t, err)
	at := time.Date(2025, 6, 13, 20, 0, 0, 0, time.UTC)

	a := admin.NewAdmin(email, "  Owner ", "hash", at)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.Equal(t, "Owner", a.Name())
	assert.Equal(t, "hash", a.PasswordHash())
	assert.Nil(t, a.LastLogin())
	assert.Equal(t, at, a.CreatedAt())
}
