package middleware

import (
	"net/http"
	"strings"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/auth"
	"github.com/gin-gonic/gin"
)

const authUsernameKey = "auth_username"

// RequireAdmin validates the bearer token on admin routes.
func RequireAdmin(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format. Use: Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			if err == auth.ErrExpiredToken {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(authUsernameKey, claims.Username)
		c.Next()
	}
}

// GetAuthUsername retrieves the authenticated username from context
func GetAuthUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(authUsernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}
