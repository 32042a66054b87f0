package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mobiledger/backend/internal/infrastructure/auth"
	"github.com/mobiledger/backend/internal/interfaces/http/dto"
)

// Context keys populated by JWTAuth
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTTenantIDKey = "jwt_tenant_id"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTAuth validates the bearer token and stores the tenant and user IDs
// in the request context. Every route behind it is tenant scoped.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(header, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, "Missing token")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		tenantID, err := claims.TenantUUID()
		if err != nil {
			abortUnauthorized(c, "Invalid tenant claim")
			return
		}
		userID, err := claims.UserUUID()
		if err != nil {
			abortUnauthorized(c, "Invalid user claim")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTTenantIDKey, tenantID)
		c.Set(JWTUserIDKey, userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

// GetJWTTenantID retrieves the tenant ID stored by JWTAuth
func GetJWTTenantID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(JWTTenantIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetJWTUserID retrieves the user ID stored by JWTAuth
func GetJWTUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(JWTUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
