package middleware

import (
	"strings"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "auth_token"

// SessionMiddleware resolves the caller from the Authorization header or the
// auth_token cookie. Missing or invalid tokens leave the request anonymous;
// routes that need a session add RequireSession. Invalid tokens are reported
// to sec, which may be nil.
func SessionMiddleware(authUC domain.AuthUsecase, sec *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 1. Try to get token from Header
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie(SessionCookieName); err == nil {
			// 2. Fall back to the cookie
			tokenString = cookie
		}

		if tokenString != "" {
			actor, err := authUC.ResolveSession(tokenString)
			if err == nil {
				c.Set(string(domain.KeyAuthContext), actor)
			} else if sec != nil {
				sec.LogInvalidSession(c.Request.Context(), c.ClientIP(), c.GetString("RequestID"), c.Request.URL.Path, err.Error())
			}
		}

		c.Next()
	}
}

// RequireSession rejects anonymous requests with 401.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Actor(c) == nil {
			c.Error(apperror.Unauthorized("No autorizado"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// Actor returns the caller resolved by SessionMiddleware, or nil.
func Actor(c *gin.Context) *domain.AuthContext {
	v, ok := c.Get(string(domain.KeyAuthContext))
	if !ok {
		return nil
	}
	actor, _ := v.(*domain.AuthContext)
	return actor
}
