package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key",
		AccessTokenExpiration: expiration,
		Issuer:                "mobiledger-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(time.Hour)
	tenantID := uuid.New()
	userID := uuid.New()

	token, err := service.GenerateToken(tenantID, userID, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	claims, err := service.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	gotTenant, err := claims.TenantUUID()
	require.NoError(t, err)
	assert.Equal(t, tenantID, gotTenant)

	gotUser, err := claims.UserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestValidateExpiredToken(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	token, err := service.GenerateToken(uuid.New(), uuid.New(), "owner@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateGarbageToken(t *testing.T) {
	service := newTestJWTService(time.Hour)
	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestJWTService(time.Hour)
	token, err := service.GenerateToken(uuid.New(), uuid.New(), "owner@example.com")
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessTokenExpiration: time.Hour, Issuer: "mobiledger-test"})
	_, err = other.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
