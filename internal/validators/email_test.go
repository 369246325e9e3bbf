package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}

func TestIsEmailValid(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.example.com", "x+tag@example.io"}
	for _, e := range valid {
		assert.True(t, IsEmailValid(e), e)
	}

	invalid := []string{"", "plain", "a b@example.com", "a@b", "@example.com", "a@"}
	for _, e := range invalid {
		assert.False(t, IsEmailValid(e), e)
	}
}
