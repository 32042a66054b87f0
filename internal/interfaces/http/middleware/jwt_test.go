package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobiledger/backend/internal/infrastructure/auth"
	"github.com/mobiledger/backend/internal/infrastructure/config"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-32-characters-long",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "test",
	})
}

func setupProtectedRoute(jwtService *auth.JWTService) (*gin.Engine, *uuid.UUID, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	var gotTenant, gotUser uuid.UUID
	engine.GET("/protected", JWTAuth(jwtService), func(c *gin.Context) {
		gotTenant, _ = GetJWTTenantID(c)
		gotUser, _ = GetJWTUserID(c)
		c.Status(http.StatusOK)
	})
	return engine, &gotTenant, &gotUser
}

func TestJWTAuthMissingHeader(t *testing.T) {
	engine, _, _ := setupProtectedRoute(newTestJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	engine, _, _ := setupProtectedRoute(newTestJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, "Token abc")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	engine, _, _ := setupProtectedRoute(newTestJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+"not-a-token")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	engine, gotTenant, gotUser := setupProtectedRoute(jwtService)

	tenantID := uuid.New()
	userID := uuid.New()
	token, err := jwtService.GenerateToken(tenantID, userID, "owner@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tenantID, *gotTenant)
	assert.Equal(t, userID, *gotUser)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	other := auth.NewJWTService(config.JWTConfig{
		Secret:                "another-secret-key-32-characters!",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "test",
	})
	engine, _, _ := setupProtectedRoute(newTestJWTService())

	token, err := other.GenerateToken(uuid.New(), uuid.New(), "owner@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
