package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/socialcoffee/ordering-api/auth"
	"github.com/socialcoffee/ordering-api/models"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// ValidateToken rejects requests without a valid access token and stores the
// caller's id and role on the context.
func ValidateToken(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	userID, role, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Set("role", role)
	c.Next()
}

// OptionalToken extracts the caller's identity when a valid token is present
// but lets anonymous requests through. Used by order creation, which accepts
// guest checkouts.
func OptionalToken(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString != "" {
		if userID, role, err := auth.ParseToken(tokenString); err == nil {
			c.Set("user_id", userID)
			c.Set("role", role)
		}
	}
	c.Next()
}

// RequireAdmin must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	role, _ := c.Get("role")
	if role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
