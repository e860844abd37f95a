//go:build unit

package password_test

import (
	"testing"

	"weekend-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	assert.NoError(t, h.Compare(hashed, "password123"))
	assert.ErrorIs(t, h.Compare(hashed, "password124"), password.ErrMismatch)
	assert.ErrorIs(t, h.Compare("", "password123"), password.ErrInvalidPassword)

	_, err = h.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestNewHasher_OutOfRangeCost(t *testing.T) {
	h := password.NewHasher(bcrypt.MaxCost + 1)

	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
