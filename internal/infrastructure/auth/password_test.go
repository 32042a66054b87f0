package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, hasher.Verify(hash, "correct horse battery"))
	assert.False(t, hasher.Verify(hash, "wrong password"))
}

func TestPasswordMinimumLength(t *testing.T) {
	hasher := NewPasswordHasher()
	_, err := hasher.Hash("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
