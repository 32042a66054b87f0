package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	identityapp "github.com/mobiledger/backend/internal/application/identity"
	"github.com/mobiledger/backend/internal/domain/identity"
	"github.com/mobiledger/backend/internal/infrastructure/auth"
	"github.com/mobiledger/backend/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newAuthTestRouter(userRepo identity.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-32-characters-long",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "test",
	})
	service := identityapp.NewAuthService(userRepo, jwtService, auth.NewPasswordHasher(), zap.NewNop())
	engine := gin.New()
	api := engine.Group("/api/v1")
	NewAuthHandler(service).RegisterRoutes(api)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestSignupCreatesAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("ExistsByEmail", mock.Anything, "owner@example.com").Return(false, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)
	engine := newAuthTestRouter(userRepo)

	w := postJSON(t, engine, "/api/v1/auth/signup", gin.H{
		"name":     "Owner",
		"email":    "owner@example.com",
		"password": "correct horse battery",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	userRepo.AssertExpectations(t)
}

func TestSignupEmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("ExistsByEmail", mock.Anything, "owner@example.com").Return(true, nil)
	engine := newAuthTestRouter(userRepo)

	w := postJSON(t, engine, "/api/v1/auth/signup", gin.H{
		"name":     "Owner",
		"email":    "owner@example.com",
		"password": "correct horse battery",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EMAIL_TAKEN")
}

func TestSignupRejectsShortPassword(t *testing.T) {
	engine := newAuthTestRouter(new(MockUserRepository))

	w := postJSON(t, engine, "/api/v1/auth/signup", gin.H{
		"name":     "Owner",
		"email":    "owner@example.com",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("the-real-password")
	require.NoError(t, err)
	user, err := identity.NewUser("Owner", "owner@example.com", hash)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "owner@example.com").Return(user, nil)
	engine := newAuthTestRouter(userRepo)

	w := postJSON(t, engine, "/api/v1/auth/login", gin.H{
		"email":    "owner@example.com",
		"password": "not-the-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestLoginSucceeds(t *testing.T) {
	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("the-real-password")
	require.NoError(t, err)
	user, err := identity.NewUser("Owner", "owner@example.com", hash)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "owner@example.com").Return(user, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)
	engine := newAuthTestRouter(userRepo)

	w := postJSON(t, engine, "/api/v1/auth/login", gin.H{
		"email":    "owner@example.com",
		"password": "the-real-password",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
}
