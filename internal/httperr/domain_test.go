package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		Kind(0):          http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, Status(kind))
	}
}

func TestKindAndCodeChecks(t *testing.T) {
	err := ErrConflict("email_already_registered", "Email already registered.")

	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.True(t, IsCode(err, "email_already_registered"))
	assert.False(t, IsCode(err, "other_code"))

	// Wrapped domain errors are still recognized.
	wrapped := fmt.Errorf("register: %w", err)
	assert.True(t, IsKind(wrapped, KindConflict))

	plain := errors.New("boom")
	assert.False(t, IsKind(plain, KindConflict))
	assert.False(t, IsCode(plain, "boom"))
}
