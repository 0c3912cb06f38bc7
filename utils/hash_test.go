package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin1234"))
	assert.False(t, IsBcryptHash("admin123"))
}

func TestEqualPlain(t *testing.T) {
	assert.True(t, EqualPlain("admin123", "admin123"))
	assert.False(t, EqualPlain("admin123", "admin12"))
	assert.False(t, EqualPlain("admin123", ""))
}
