//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"weekend-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSample = errs.NewReason(errs.ErrConflict, "sample", "sample conflict")

func TestReason(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errs.Wrap(errSample, "inner"))

	assert.ErrorIs(t, wrapped, errSample)
	assert.ErrorIs(t, wrapped, errs.ErrConflict)
	assert.NotErrorIs(t, wrapped, errs.ErrValidation)

	r, ok := errs.ReasonOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "sample", r.Code())
	assert.Equal(t, "sample conflict", r.Message())

	_, ok = errs.ReasonOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestMark(t *testing.T) {
	marker := errs.New("marker")
	err := errs.Mark(errors.New("driver failure"), marker)

	assert.True(t, errs.Is(err, marker))
	assert.Equal(t, marker, errs.Mark(nil, marker))
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}
