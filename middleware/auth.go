package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests carrying no Authorization header. The
// credential itself is not verified; any bearer token passes.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("Authorization")) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireAdmin passes only when the Authorization header equals the
// shared admin secret exactly.
func RequireAdmin(adminToken string) gin.HandlerFunc {
	expected := "Bearer " + adminToken

	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != expected {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
