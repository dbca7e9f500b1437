package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("swamp-secret")
	assert.NoError(t, err)
	assert.NotEqual(t, "swamp-secret", hashed)

	assert.True(t, VerifyPassword(hashed, "swamp-secret"))
	assert.False(t, VerifyPassword(hashed, "wrong-password"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same-input")
	assert.NoError(t, err)

	second, err := HashPassword("same-input")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
