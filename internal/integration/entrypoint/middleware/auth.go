// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// SessionKey is the context key for the authenticated session.
const SessionKey ContextKey = "session"

// AuthMiddleware gates the API behind the admin session.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	cookie       *SessionCookie
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService, cookie *SessionCookie) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		cookie:       cookie,
	}
}

// Authenticate returns a Gin middleware handler that requires a valid session.
// The token is read from the session cookie, then from a Bearer header.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			m.reject(c, "Authentication required", domainerror.ErrCodeMissingToken)
			return
		}

		session, err := m.tokenService.ValidateSessionToken(token)
		if err != nil {
			code := domainerror.ErrCodeInvalidToken
			if errors.Is(err, domainerror.ErrExpiredToken) {
				code = domainerror.ErrCodeExpiredToken
			}
			m.reject(c, "Invalid or expired session", code)
			return
		}

		c.Set(string(SessionKey), session)
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if token, err := c.Cookie(m.cookie.Name); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

func (m *AuthMiddleware) reject(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	m.cookie.Clear(c)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetSessionFromContext extracts the session from the Gin context.
func GetSessionFromContext(c *gin.Context) (*entity.Session, bool) {
	value, exists := c.Get(string(SessionKey))
	if !exists {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok
}
