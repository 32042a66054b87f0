package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/identity"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/infrastructure/auth"
	"github.com/mobiledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of UserRepository
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

func newTestAuthService(userRepo identity.UserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret",
		AccessTokenExpiration: time.Hour,
		Issuer:                "mobiledger-test",
	})
	return NewAuthService(userRepo, jwtService, auth.NewPasswordHasher(), zap.NewNop())
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an account with its own tenant scope", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)

		userRepo.On("ExistsByEmail", ctx, "owner@example.com").Return(false, nil)
		var saved *identity.User
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*identity.User)
		}).Return(nil)

		response, err := service.Signup(ctx, SignupRequest{
			Name:     "Shop Owner",
			Email:    "Owner@Example.com",
			Password: "strong password",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, response.AccessToken)
		assert.Equal(t, "owner@example.com", response.User.Email)
		assert.NotEqual(t, uuid.Nil, response.User.TenantID)
		require.NotNil(t, saved)
		assert.NotEqual(t, "strong password", saved.PasswordHash)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)

		userRepo.On("ExistsByEmail", ctx, "owner@example.com").Return(true, nil)

		_, err := service.Signup(ctx, SignupRequest{
			Name:     "Shop Owner",
			Email:    "owner@example.com",
			Password: "strong password",
		})
		require.Error(t, err)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher()

	newAccount := func(t *testing.T, password string) *identity.User {
		t.Helper()
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		user, err := identity.NewUser("Shop Owner", "owner@example.com", hash)
		require.NoError(t, err)
		return user
	}

	t.Run("valid credentials issue a token scoped to the tenant", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)

		user := newAccount(t, "strong password")
		userRepo.On("FindByEmail", ctx, "owner@example.com").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		response, err := service.Login(ctx, LoginRequest{Email: "owner@example.com", Password: "strong password"})
		require.NoError(t, err)
		assert.Equal(t, user.TenantID, response.User.TenantID)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)

		user := newAccount(t, "strong password")
		userRepo.On("FindByEmail", ctx, "owner@example.com").Return(user, nil)

		_, err := service.Login(ctx, LoginRequest{Email: "owner@example.com", Password: "wrong"})
		require.Error(t, err)
	})

	t.Run("unknown email fails the same way as a wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := newTestAuthService(userRepo)

		userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}
