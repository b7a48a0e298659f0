// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UserEmailKey is the context key for the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
)

// AuthMiddleware guards the accounting routes. Tokens come from the parks
// platform identity service; this middleware only verifies them.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin handler that rejects requests without a valid
// Bearer token and records the actor's identity on the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errCode := bearerToken(c.GetHeader("Authorization"))
		if errCode != "" {
			unauthorized(c, errCode)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserEmailKey), claims.Email)

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value and
// returns the error code to report when it cannot.
func bearerToken(header string) (string, domainerror.AuthErrorCode) {
	if header == "" {
		return "", domainerror.ErrCodeMissingToken
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", domainerror.ErrCodeInvalidToken
	}
	if token == "" {
		return "", domainerror.ErrCodeMissingToken
	}
	return token, ""
}

func unauthorized(c *gin.Context, code domainerror.AuthErrorCode) {
	message := "Invalid or missing credentials"
	if code == domainerror.ErrCodeMissingToken {
		message = "Authorization bearer token is required"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetUserIDFromContext extracts the authenticated actor's ID from the Gin
// context. Callers that record who created an entry go through this.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
