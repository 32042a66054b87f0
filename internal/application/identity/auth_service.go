package identity

import (
	"context"
	"strings"

	"github.com/mobiledger/backend/internal/domain/identity"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles account signup and login. Every account owns its
// tenant scope; the issued token carries the tenant ID used to scope all
// subsequent queries.
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	hasher     *auth.PasswordHasher
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, hasher *auth.PasswordHasher, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     logger,
	}
}

// Signup registers a new owner account
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PASSWORD", err.Error())
	}

	user, err := identity.NewUser(req.Name, email, hash)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("account created", zap.String("user_id", user.ID.String()))
	return s.issueToken(user)
}

// Login authenticates an account and issues an access token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		s.logger.Warn("failed login attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("failed to record login time", zap.Error(err))
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *identity.User) (*AuthResponse, error) {
	token, err := s.jwtService.GenerateToken(user.TenantID, user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        ToUserResponse(user),
	}, nil
}
