package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillsync-backend/internal/shared/auth"
	"skillsync-backend/internal/shared/server/respond"
)

const (
	userEmailKey   = "userEmail"
	userNameKey    = "userName"
	userRoleKey    = "userRole"
	userPictureKey = "userPicture"
)

// Auth validates the bearer JWT and stores the caller's identity in context.
// Google OAuth endpoints are exempt so that login can bootstrap a token.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/auth/google/") || path == "/api/v1/health" || path == "/metrics" {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := auth.VerifyJWT(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(userEmailKey, claims.Email)
		if claims.Name != "" {
			c.Set(userNameKey, claims.Name)
		}
		if claims.Role != "" {
			c.Set(userRoleKey, claims.Role)
		}
		if claims.Picture != "" {
			c.Set(userPictureKey, claims.Picture)
		}
		c.Next()
	}
}

// RequireRole rejects requests whose JWT role does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserRoleFromContext(c) != role {
			respond.Error(c, http.StatusForbidden, "forbidden", "insufficient role", nil)
			return
		}
		c.Next()
	}
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// UserNameFromContext fetches the user name set by the auth middleware.
func UserNameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userNameKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}

// UserPictureFromContext fetches the user picture set by the auth middleware.
func UserPictureFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userPictureKey)
	if picture, ok := val.(string); ok {
		return picture
	}
	return ""
}

// UserRoleFromContext fetches the user role set by the auth middleware.
func UserRoleFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userRoleKey)
	if role, ok := val.(string); ok {
		return role
	}
	return ""
}
