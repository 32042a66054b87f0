package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Ali Raza", "Ali@Example.com", "hashed")
	require.NoError(t, err)
	assert.Equal(t, "ali@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.TenantID)
	assert.NotEqual(t, user.ID, uuid.Nil)
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "ali@example.com", "hashed")
	assert.Error(t, err)

	_, err = NewUser("Ali", "not-an-email", "hashed")
	assert.Error(t, err)

	_, err = NewUser("Ali", "ali@example.com", "")
	assert.Error(t, err)
}

func TestUser_RecordLogin(t *testing.T) {
	user, err := NewUser("Ali Raza", "ali@example.com", "hashed")
	require.NoError(t, err)
	assert.Nil(t, user.LastLoginAt)

	user.RecordLogin()
	assert.NotNil(t, user.LastLoginAt)
}
